package catalog

// Category is a fixed course category from the embedded catalog.
type Category struct {
	// Name is the canonical category value stored on courses
	// (set during YAML unmarshaling from the map key).
	Name string `yaml:"-" json:"name"`

	// Display information
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`
}

// categoryFile is the shape of the embedded categories YAML file.
type categoryFile struct {
	Categories map[string]Category `yaml:"categories"`
}
