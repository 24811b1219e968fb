package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureIntegrity(t *testing.T) {
	store := NewStoreFromFixture()

	seen := make(map[string]bool)
	for _, p := range store.Products() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Images, "%s has no images", p.ID)
		assert.NotEmpty(t, p.Sizes, "%s has no sizes", p.ID)
		assert.NotEmpty(t, p.Colors, "%s has no colors", p.ID)
		assert.False(t, p.Price.IsNegative(), "%s has a negative price", p.ID)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.ReviewCount, 0)
		assert.GreaterOrEqual(t, p.Stock, 0)

		if !p.OriginalPrice.IsZero() {
			assert.True(t, p.OriginalPrice.GreaterThanOrEqual(p.Price),
				"%s original price below sale price", p.ID)
		}
		if p.IsOnSale {
			assert.False(t, p.OriginalPrice.IsZero(), "%s on sale without original price", p.ID)
		}
	}

	slugs := make(map[string]bool)
	for _, c := range store.Categories() {
		assert.False(t, slugs[c.Slug], "duplicate category slug %s", c.Slug)
		slugs[c.Slug] = true
	}
}

func TestFixtureCategoryCountsMatchProducts(t *testing.T) {
	store := NewStoreFromFixture()

	for _, c := range store.Categories() {
		assert.Len(t, store.Find(Query{Category: c.Slug}), c.ProductCount, "category %s", c.Slug)
		for _, sub := range c.Subcategories {
			assert.Len(t, store.Find(Query{Category: c.Slug, Subcategory: sub.Slug}), sub.ProductCount,
				"subcategory %s/%s", c.Slug, sub.Slug)
		}
	}
}

func TestProductByID(t *testing.T) {
	store := NewStoreFromFixture()

	p, err := store.ProductByID("p-001")
	require.NoError(t, err)
	assert.Equal(t, "Silk Charmeuse Wrap Dress", p.Name)

	_, err = store.ProductByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryBySlug(t *testing.T) {
	store := NewStoreFromFixture()

	c, err := store.CategoryBySlug("women")
	require.NoError(t, err)
	assert.Equal(t, "Women", c.Name)

	_, err = store.CategoryBySlug("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBrandAndMaterialEnumeration(t *testing.T) {
	store := NewStoreFromFixture()

	assert.ElementsMatch(t, []string{"Atelier Noir", "Casa Varetti", "Maison Lumiere", "Velato"}, store.Brands())
	assert.Contains(t, store.Materials(), "Silk")
	assert.Contains(t, store.Materials(), "Leather")
}

func TestPriceBounds(t *testing.T) {
	store := NewStoreFromFixture()

	min, max := store.PriceBounds()
	assert.Equal(t, "185", min.String())
	assert.Equal(t, "2450", max.String())
	for _, p := range store.Products() {
		assert.True(t, p.Price.GreaterThanOrEqual(min))
		assert.True(t, p.Price.LessThanOrEqual(max))
	}
}

func TestFlaggedViews(t *testing.T) {
	store := NewStoreFromFixture()

	featured := store.Featured(2)
	assert.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}

	for _, p := range store.NewArrivals(0) {
		assert.True(t, p.IsNew)
	}
	for _, p := range store.OnSale(0) {
		assert.True(t, p.IsOnSale)
	}
}
