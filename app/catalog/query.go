package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/velato/storefront/app/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

// ParseSortKey maps a raw query parameter to a sort key, defaulting to
// newest for anything unrecognized.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortRating, SortPopular, SortNewest:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// Pseudo-category slugs that filter on product flags instead of the
// category id. Selecting one overrides the category filter entirely.
const (
	PseudoFeatured    = "featured"
	PseudoNewArrivals = "new-arrivals"
	PseudoSale        = "sale"
)

// Query is one set of listing parameters. The zero value matches every
// product and orders by newest.
type Query struct {
	Category    string
	Subcategory string
	PriceMin    decimal.Decimal
	PriceMax    decimal.Decimal
	Brands      []string
	Materials   []string
	Sort        SortKey
}

// Find applies the query to the catalog snapshot and returns a fresh
// ordered slice. It is a pure function of the snapshot and the query:
// no internal state, no errors, an empty result for anything that
// matches nothing.
func (s *Store) Find(q Query) []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for i := range s.products {
		if matches(&s.products[i], &q) {
			out = append(out, s.products[i])
		}
	}
	sortProducts(out, q.Sort)
	return out
}

// Search performs the free-text product search used by the search page:
// a case-insensitive substring match against name, description, brand,
// category and material, or a tag match. An empty query returns an empty
// result; search has no browse-all fallback.
func (s *Store) Search(query string, key SortKey) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var out []models.Product
	for i := range s.products {
		if matchesText(&s.products[i], needle) {
			out = append(out, s.products[i])
		}
	}
	sortProducts(out, key)
	return out
}

func matches(p *models.Product, q *Query) bool {
	switch q.Category {
	case "":
	case PseudoFeatured:
		if !p.IsFeatured {
			return false
		}
	case PseudoNewArrivals:
		if !p.IsNew {
			return false
		}
	case PseudoSale:
		if !p.IsOnSale {
			return false
		}
	default:
		if p.Category != q.Category {
			return false
		}
		// Subcategory only narrows an active category selection.
		if q.Subcategory != "" && p.Subcategory != q.Subcategory {
			return false
		}
	}

	if !q.PriceMin.IsZero() || !q.PriceMax.IsZero() {
		if p.Price.LessThan(q.PriceMin) {
			return false
		}
		if !q.PriceMax.IsZero() && p.Price.GreaterThan(q.PriceMax) {
			return false
		}
	}

	if len(q.Brands) > 0 && !contains(q.Brands, p.Brand) {
		return false
	}
	if len(q.Materials) > 0 && !contains(q.Materials, p.Material) {
		return false
	}
	return true
}

func matchesText(p *models.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Description, p.Brand, p.Category, p.Material} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. Every ordering uses a stable sort so the
// relative fixture order of equal elements is preserved.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	default:
		// newest is a boolean partition: new arrivals first, fixture
		// order within each half. The fixture carries no creation time.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
