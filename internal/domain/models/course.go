package models

// Course groups topics by subject. Courses have an independent lifecycle;
// topics only reference them by id.
type Course struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
