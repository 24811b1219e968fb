package models

// Category groups products for navigation. The slug doubles as the
// routing key for /category/{slug}.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	ProductCount  int           `json:"productCount"`
}

type Subcategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}
