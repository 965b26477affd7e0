package catalog

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the fixed course-category catalog loaded from the embedded
// YAML file. Course categories are configuration, not data: they change with
// a release, never at runtime.
type Registry struct {
	categories map[string]Category
	mu         sync.RWMutex
}

// NewRegistry creates a category registry and loads the embedded catalog
func NewRegistry() (*Registry, error) {
	r := &Registry{
		categories: make(map[string]Category),
	}

	if err := r.loadFile("categories"); err != nil {
		return nil, fmt.Errorf("failed to load course categories: %w", err)
	}

	return r, nil
}

// loadFile loads one embedded catalog YAML file
func (r *Registry) loadFile(name string) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	for name, category := range file.Categories {
		category.Name = name
		r.categories[name] = category
	}
	r.mu.Unlock()

	return nil
}

// IsValid reports whether the given category value exists in the catalog
func (r *Registry) IsValid(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.categories[name]
	return ok
}

// Get returns the category for the given canonical name
func (r *Registry) Get(name string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[name]
	if !ok {
		return Category{}, fmt.Errorf("unknown course category %q", name)
	}
	return category, nil
}

// List returns all categories sorted by canonical name
func (r *Registry) List() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}
