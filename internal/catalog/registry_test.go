package catalog

import "testing"

func TestRegistryLoadsEmbeddedCatalog(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if !r.IsValid("BACKEND") {
		t.Error("BACKEND should be a valid category")
	}
	if r.IsValid("KNITTING") {
		t.Error("KNITTING should not be a valid category")
	}

	category, err := r.Get("DEVOPS")
	if err != nil {
		t.Fatalf("Get(DEVOPS): %v", err)
	}
	if category.Name != "DEVOPS" {
		t.Errorf("canonical name = %q, want DEVOPS", category.Name)
	}
	if category.DisplayName == "" {
		t.Error("display name should be populated from the YAML file")
	}
}

func TestRegistryListSorted(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	categories := r.List()
	if len(categories) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name >= categories[i].Name {
			t.Errorf("categories not sorted: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
}
