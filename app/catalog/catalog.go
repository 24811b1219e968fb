package catalog

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/velato/storefront/app/models"
)

// ErrNotFound is returned by lookups for ids or slugs absent from the
// catalog. Handlers map it to the not-found view, never to a hard failure.
var ErrNotFound = errors.New("catalog: not found")

// Store is the immutable in-memory catalog. It is built once at startup
// and is safe for concurrent readers; nothing mutates it afterwards.
type Store struct {
	products   []models.Product
	categories []models.Category

	byID      map[string]*models.Product
	bySlug    map[string]*models.Category
	brands    []string
	materials []string
}

// NewStore indexes the given fixture data. The slices are copied so later
// changes to the caller's slices cannot leak into the snapshot.
func NewStore(products []models.Product, categories []models.Category) *Store {
	s := &Store{
		products:   append([]models.Product(nil), products...),
		categories: append([]models.Category(nil), categories...),
		byID:       make(map[string]*models.Product, len(products)),
		bySlug:     make(map[string]*models.Category, len(categories)),
	}

	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	for i := range s.categories {
		s.bySlug[s.categories[i].Slug] = &s.categories[i]
	}

	s.brands = distinct(s.products, func(p *models.Product) string { return p.Brand })
	s.materials = distinct(s.products, func(p *models.Product) string { return p.Material })

	return s
}

// NewStoreFromFixture builds the store from the bundled sample data.
func NewStoreFromFixture() *Store {
	return NewStore(FixtureProducts(), FixtureCategories())
}

// Products returns the full catalog snapshot in fixture order.
func (s *Store) Products() []models.Product {
	return s.products
}

// Categories returns all categories in fixture order.
func (s *Store) Categories() []models.Category {
	return s.categories
}

// ProductByID looks a product up by id. Returns ErrNotFound for unknown ids.
func (s *Store) ProductByID(id string) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// CategoryBySlug looks a category up by its routing slug.
func (s *Store) CategoryBySlug(slug string) (*models.Category, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Featured returns up to limit featured products, fixture order.
func (s *Store) Featured(limit int) []models.Product {
	return s.pick(limit, func(p *models.Product) bool { return p.IsFeatured })
}

// NewArrivals returns up to limit products flagged as new.
func (s *Store) NewArrivals(limit int) []models.Product {
	return s.pick(limit, func(p *models.Product) bool { return p.IsNew })
}

// OnSale returns up to limit products flagged as on sale.
func (s *Store) OnSale(limit int) []models.Product {
	return s.pick(limit, func(p *models.Product) bool { return p.IsOnSale })
}

// Brands returns the distinct brand names in the catalog, sorted.
func (s *Store) Brands() []string {
	return s.brands
}

// Materials returns the distinct material names in the catalog, sorted.
func (s *Store) Materials() []string {
	return s.materials
}

// PriceBounds returns the lowest and highest product price. A catalog
// without products reports zero bounds.
func (s *Store) PriceBounds() (min, max decimal.Decimal) {
	if len(s.products) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max = s.products[0].Price, s.products[0].Price
	for i := range s.products[1:] {
		p := s.products[i+1].Price
		if p.LessThan(min) {
			min = p
		}
		if p.GreaterThan(max) {
			max = p
		}
	}
	return min, max
}

func (s *Store) pick(limit int, keep func(*models.Product) bool) []models.Product {
	var out []models.Product
	for i := range s.products {
		if keep(&s.products[i]) {
			out = append(out, s.products[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func distinct(products []models.Product, field func(*models.Product) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range products {
		v := field(&products[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
