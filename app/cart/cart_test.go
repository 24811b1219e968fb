package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velato/storefront/app/models"
)

func testProduct(price int64) *models.Product {
	return &models.Product{
		ID:    "p-test",
		Name:  "Test Coat",
		Price: decimal.NewFromInt(price),
		Sizes: []models.Size{{ID: "m", Name: "M", InStock: true}},
		Colors: []models.Color{
			{ID: "noir", Name: "Noir", InStock: true},
		},
	}
}

func TestAdd_AppendsInOrder(t *testing.T) {
	c := New()
	p := testProduct(100)

	first := c.Add(p, p.Sizes[0], p.Colors[0], 1)
	second := c.Add(p, p.Sizes[0], p.Colors[0], 2)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestAdd_DoesNotMergeDuplicateVariants(t *testing.T) {
	c := New()
	p := testProduct(100)

	c.Add(p, p.Sizes[0], p.Colors[0], 1)
	c.Add(p, p.Sizes[0], p.Colors[0], 1)

	// Same product and variant twice stays two separate lines.
	assert.Equal(t, 2, c.Len())
}

func TestSetQuantity(t *testing.T) {
	c := New()
	p := testProduct(100)
	item := c.Add(p, p.Sizes[0], p.Colors[0], 1)

	c.SetQuantity(item.ID, 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	c.SetQuantity("no-such-item", 3)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestSetQuantityZero_EquivalentToRemove(t *testing.T) {
	p := testProduct(100)

	viaSet := New()
	itemA := viaSet.Add(p, p.Sizes[0], p.Colors[0], 2)
	viaSet.SetQuantity(itemA.ID, 0)

	viaRemove := New()
	itemB := viaRemove.Add(p, p.Sizes[0], p.Colors[0], 2)
	viaRemove.Remove(itemB.ID)

	assert.Zero(t, viaSet.Len())
	assert.Zero(t, viaRemove.Len())
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	c := New()
	p := testProduct(100)
	c.Add(p, p.Sizes[0], p.Colors[0], 1)

	c.Remove("no-such-item")
	assert.Equal(t, 1, c.Len())
}

func TestTotals(t *testing.T) {
	c := New()
	p := testProduct(200)
	c.Add(p, p.Sizes[0], p.Colors[0], 2)

	totals := c.Totals()
	assert.Equal(t, "400", totals.Subtotal.String())
	assert.Equal(t, "32.00", totals.Tax.StringFixed(2))
	assert.True(t, totals.Shipping.IsZero())
	assert.Equal(t, "432.00", totals.Total.StringFixed(2))
}

func TestTotals_RecomputedOnEveryRead(t *testing.T) {
	c := New()
	p := testProduct(100)
	item := c.Add(p, p.Sizes[0], p.Colors[0], 1)

	assert.Equal(t, "100", c.Totals().Subtotal.String())

	c.SetQuantity(item.ID, 3)
	assert.Equal(t, "300", c.Totals().Subtotal.String())

	c.Remove(item.ID)
	assert.True(t, c.Totals().Subtotal.IsZero())
	assert.True(t, c.Totals().Total.IsZero())
}

func TestClear(t *testing.T) {
	c := New()
	p := testProduct(100)
	c.Add(p, p.Sizes[0], p.Colors[0], 1)
	c.Add(p, p.Sizes[0], p.Colors[0], 1)

	c.Clear()
	assert.Zero(t, c.Len())
	c.Clear()
	assert.Zero(t, c.Len())
}

func TestStore(t *testing.T) {
	s := NewStore()

	id, c := s.Get("")
	require.NotEmpty(t, id)
	require.NotNil(t, c)

	sameID, same := s.Get(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, c, same)

	_, ok := s.Peek("unknown")
	assert.False(t, ok)
	peeked, ok := s.Peek(id)
	assert.True(t, ok)
	assert.Same(t, c, peeked)
}
