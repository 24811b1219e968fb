package models

import (
	"github.com/shopspring/decimal"
)

// Product is a single catalog entry. Products are loaded once from the
// static fixture at startup and never mutated afterwards.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Material      string          `json:"material"`
	Care          []string        `json:"care,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Images        []string        `json:"images"`
	Sizes         []Size          `json:"sizes"`
	Colors        []Color         `json:"colors"`
	Stock         int             `json:"stock"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	IsNew         bool            `json:"isNew"`
	IsFeatured    bool            `json:"isFeatured"`
	IsOnSale      bool            `json:"isOnSale"`
	Tags          []string        `json:"tags"`
}

type Size struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	InStock bool   `json:"inStock"`
}

type Color struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	InStock bool   `json:"inStock"`
}

// SizeByID returns the product's size variant with the given id.
func (p *Product) SizeByID(id string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// ColorByID returns the product's color variant with the given id.
func (p *Product) ColorByID(id string) (Color, bool) {
	for _, c := range p.Colors {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}
