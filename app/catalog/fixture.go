package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/velato/storefront/app/models"
)

func price(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FixtureProducts returns the bundled sample catalog. The storefront has
// no real inventory system; this is the process-lifetime source of truth.
func FixtureProducts() []models.Product {
	return []models.Product{
		{
			ID:          "p-001",
			Name:        "Silk Charmeuse Wrap Dress",
			Description: "A fluid wrap dress cut from heavyweight silk charmeuse, finished with hand-rolled hems.",
			Brand:       "Velato",
			Category:    "women",
			Subcategory: "dresses",
			Material:    "Silk",
			Care:        []string{"Dry clean only", "Cool iron on reverse"},
			Price:       price(89000),
			Images: []string{
				"https://images.velato.example/products/p-001-front.jpg",
				"https://images.velato.example/products/p-001-back.jpg",
			},
			Sizes: []models.Size{
				{ID: "xs", Name: "XS", Value: "34", InStock: true},
				{ID: "s", Name: "S", Value: "36", InStock: true},
				{ID: "m", Name: "M", Value: "38", InStock: true},
				{ID: "l", Name: "L", Value: "40", InStock: false},
			},
			Colors: []models.Color{
				{ID: "ivory", Name: "Ivory", Hex: "#F8F4E9", InStock: true},
				{ID: "noir", Name: "Noir", Hex: "#1A1A1A", InStock: true},
			},
			Stock:       14,
			Rating:      4.8,
			ReviewCount: 127,
			IsNew:       true,
			IsFeatured:  true,
			Tags:        []string{"evening", "silk", "wrap"},
		},
		{
			ID:          "p-002",
			Name:        "Double-Breasted Cashmere Coat",
			Description: "An unstructured double-breasted coat in brushed Mongolian cashmere with horn buttons.",
			Brand:       "Maison Lumiere",
			Category:    "women",
			Subcategory: "outerwear",
			Material:    "Cashmere",
			Care:        []string{"Specialist dry clean", "Store folded"},
			Price:       price(245000),
			Images:      []string{"https://images.velato.example/products/p-002-front.jpg"},
			Sizes: []models.Size{
				{ID: "s", Name: "S", Value: "36", InStock: true},
				{ID: "m", Name: "M", Value: "38", InStock: true},
				{ID: "l", Name: "L", Value: "40", InStock: true},
			},
			Colors: []models.Color{
				{ID: "camel", Name: "Camel", Hex: "#C19A6B", InStock: true},
				{ID: "charcoal", Name: "Charcoal", Hex: "#36454F", InStock: false},
			},
			Stock:       6,
			Rating:      4.9,
			ReviewCount: 84,
			IsFeatured:  true,
			Tags:        []string{"winter", "cashmere", "coat"},
		},
		{
			ID:            "p-003",
			Name:          "Pleated Wool Trousers",
			Description:   "High-waisted trousers in tropical-weight wool with a single forward pleat.",
			Brand:         "Casa Varetti",
			Category:      "women",
			Subcategory:   "trousers",
			Material:      "Wool",
			Price:         price(42000),
			OriginalPrice: price(56000),
			Images:        []string{"https://images.velato.example/products/p-003-front.jpg"},
			Sizes: []models.Size{
				{ID: "xs", Name: "XS", Value: "34", InStock: true},
				{ID: "s", Name: "S", Value: "36", InStock: false},
				{ID: "m", Name: "M", Value: "38", InStock: true},
			},
			Colors: []models.Color{
				{ID: "espresso", Name: "Espresso", Hex: "#4B3621", InStock: true},
			},
			Stock:       22,
			Rating:      4.5,
			ReviewCount: 203,
			IsOnSale:    true,
			Tags:        []string{"tailoring", "wool"},
		},
		{
			ID:          "p-004",
			Name:        "Unstructured Linen Blazer",
			Description: "A soft-shouldered blazer in washed Irish linen, half-lined for warm weather.",
			Brand:       "Velato",
			Category:    "men",
			Subcategory: "tailoring",
			Material:    "Linen",
			Price:       price(68000),
			Images:      []string{"https://images.velato.example/products/p-004-front.jpg"},
			Sizes: []models.Size{
				{ID: "48", Name: "48", Value: "48", InStock: true},
				{ID: "50", Name: "50", Value: "50", InStock: true},
				{ID: "52", Name: "52", Value: "52", InStock: true},
			},
			Colors: []models.Color{
				{ID: "sand", Name: "Sand", Hex: "#D8C7A5", InStock: true},
				{ID: "navy", Name: "Navy", Hex: "#1F2A44", InStock: true},
			},
			Stock:       18,
			Rating:      4.6,
			ReviewCount: 96,
			IsNew:       true,
			Tags:        []string{"summer", "linen", "tailoring"},
		},
		{
			ID:            "p-005",
			Name:          "Merino Roll-Neck Sweater",
			Description:   "A fine-gauge roll neck knitted from extra-fine merino in a trim fit.",
			Brand:         "Atelier Noir",
			Category:      "men",
			Subcategory:   "knitwear",
			Material:      "Wool",
			Price:         price(29000),
			OriginalPrice: price(38000),
			Images:        []string{"https://images.velato.example/products/p-005-front.jpg"},
			Sizes: []models.Size{
				{ID: "s", Name: "S", Value: "46", InStock: true},
				{ID: "m", Name: "M", Value: "48", InStock: true},
				{ID: "l", Name: "L", Value: "50", InStock: true},
				{ID: "xl", Name: "XL", Value: "52", InStock: false},
			},
			Colors: []models.Color{
				{ID: "bordeaux", Name: "Bordeaux", Hex: "#5E2129", InStock: true},
				{ID: "forest", Name: "Forest", Hex: "#2C4A3B", InStock: true},
			},
			Stock:       31,
			Rating:      4.4,
			ReviewCount: 311,
			IsOnSale:    true,
			Tags:        []string{"knitwear", "merino", "winter"},
		},
		{
			ID:          "p-006",
			Name:        "Grained Leather Tote",
			Description: "A structured carryall in pebbled calf leather with a suede interior and brass feet.",
			Brand:       "Maison Lumiere",
			Category:    "accessories",
			Subcategory: "bags",
			Material:    "Leather",
			Price:       price(152000),
			Images:      []string{"https://images.velato.example/products/p-006-front.jpg"},
			Sizes: []models.Size{
				{ID: "os", Name: "One Size", Value: "OS", InStock: true},
			},
			Colors: []models.Color{
				{ID: "cognac", Name: "Cognac", Hex: "#9A463D", InStock: true},
				{ID: "noir", Name: "Noir", Hex: "#1A1A1A", InStock: true},
			},
			Stock:       9,
			Rating:      4.9,
			ReviewCount: 58,
			IsFeatured:  true,
			Tags:        []string{"leather", "bag", "tote"},
		},
		{
			ID:          "p-007",
			Name:        "Hand-Rolled Silk Scarf",
			Description: "A 90cm twill scarf screen-printed in twelve colours with hand-rolled edges.",
			Brand:       "Velato",
			Category:    "accessories",
			Subcategory: "scarves",
			Material:    "Silk",
			Price:       price(21000),
			Images:      []string{"https://images.velato.example/products/p-007-front.jpg"},
			Sizes: []models.Size{
				{ID: "os", Name: "One Size", Value: "OS", InStock: true},
			},
			Colors: []models.Color{
				{ID: "jade", Name: "Jade", Hex: "#00A86B", InStock: true},
				{ID: "saffron", Name: "Saffron", Hex: "#F4C430", InStock: true},
			},
			Stock:       40,
			Rating:      4.7,
			ReviewCount: 142,
			IsNew:       true,
			Tags:        []string{"silk", "scarf", "gift"},
		},
		{
			ID:            "p-008",
			Name:          "Suede Chelsea Boots",
			Description:   "Goodyear-welted chelsea boots in weatherproofed suede on a leather sole.",
			Brand:         "Casa Varetti",
			Category:      "shoes",
			Subcategory:   "boots",
			Material:      "Suede",
			Price:         price(59000),
			OriginalPrice: price(74000),
			Images:        []string{"https://images.velato.example/products/p-008-front.jpg"},
			Sizes: []models.Size{
				{ID: "41", Name: "41", Value: "41", InStock: true},
				{ID: "42", Name: "42", Value: "42", InStock: true},
				{ID: "43", Name: "43", Value: "43", InStock: true},
				{ID: "44", Name: "44", Value: "44", InStock: false},
			},
			Colors: []models.Color{
				{ID: "taupe", Name: "Taupe", Hex: "#8B8589", InStock: true},
			},
			Stock:       12,
			Rating:      4.3,
			ReviewCount: 176,
			IsOnSale:    true,
			Tags:        []string{"boots", "suede"},
		},
		{
			ID:          "p-009",
			Name:        "Leather Court Heels",
			Description: "A 70mm court heel in nappa leather with a cushioned footbed.",
			Brand:       "Atelier Noir",
			Category:    "shoes",
			Subcategory: "heels",
			Material:    "Leather",
			Price:       price(47000),
			Images:      []string{"https://images.velato.example/products/p-009-front.jpg"},
			Sizes: []models.Size{
				{ID: "36", Name: "36", Value: "36", InStock: true},
				{ID: "37", Name: "37", Value: "37", InStock: true},
				{ID: "38", Name: "38", Value: "38", InStock: true},
			},
			Colors: []models.Color{
				{ID: "noir", Name: "Noir", Hex: "#1A1A1A", InStock: true},
				{ID: "nude", Name: "Nude", Hex: "#E3BC9A", InStock: true},
			},
			Stock:       17,
			Rating:      4.2,
			ReviewCount: 88,
			Tags:        []string{"heels", "leather", "evening"},
		},
		{
			ID:          "p-010",
			Name:        "Garment-Dyed Poplin Shirt",
			Description: "A relaxed shirt in two-ply Egyptian cotton poplin, garment dyed for depth of colour.",
			Brand:       "Velato",
			Category:    "men",
			Subcategory: "shirts",
			Material:    "Cotton",
			Price:       price(18500),
			Images:      []string{"https://images.velato.example/products/p-010-front.jpg"},
			Sizes: []models.Size{
				{ID: "s", Name: "S", Value: "38", InStock: true},
				{ID: "m", Name: "M", Value: "40", InStock: true},
				{ID: "l", Name: "L", Value: "42", InStock: true},
			},
			Colors: []models.Color{
				{ID: "white", Name: "White", Hex: "#FFFFFF", InStock: true},
				{ID: "sage", Name: "Sage", Hex: "#9CAF88", InStock: true},
			},
			Stock:       45,
			Rating:      4.5,
			ReviewCount: 264,
			IsFeatured:  true,
			Tags:        []string{"shirt", "cotton", "essentials"},
		},
	}
}

// FixtureCategories returns the navigation categories matching the sample
// catalog. Product counts are maintained by hand alongside the fixture.
func FixtureCategories() []models.Category {
	return []models.Category{
		{
			ID: "women", Name: "Women", Slug: "women",
			Description: "Ready-to-wear for women",
			Image:       "https://images.velato.example/categories/women.jpg",
			Subcategories: []models.Subcategory{
				{ID: "dresses", Name: "Dresses", Slug: "dresses", ProductCount: 1},
				{ID: "outerwear", Name: "Outerwear", Slug: "outerwear", ProductCount: 1},
				{ID: "trousers", Name: "Trousers", Slug: "trousers", ProductCount: 1},
			},
			ProductCount: 3,
		},
		{
			ID: "men", Name: "Men", Slug: "men",
			Description: "Ready-to-wear for men",
			Image:       "https://images.velato.example/categories/men.jpg",
			Subcategories: []models.Subcategory{
				{ID: "tailoring", Name: "Tailoring", Slug: "tailoring", ProductCount: 1},
				{ID: "knitwear", Name: "Knitwear", Slug: "knitwear", ProductCount: 1},
				{ID: "shirts", Name: "Shirts", Slug: "shirts", ProductCount: 1},
			},
			ProductCount: 3,
		},
		{
			ID: "accessories", Name: "Accessories", Slug: "accessories",
			Image: "https://images.velato.example/categories/accessories.jpg",
			Subcategories: []models.Subcategory{
				{ID: "bags", Name: "Bags", Slug: "bags", ProductCount: 1},
				{ID: "scarves", Name: "Scarves", Slug: "scarves", ProductCount: 1},
			},
			ProductCount: 2,
		},
		{
			ID: "shoes", Name: "Shoes", Slug: "shoes",
			Image: "https://images.velato.example/categories/shoes.jpg",
			Subcategories: []models.Subcategory{
				{ID: "boots", Name: "Boots", Slug: "boots", ProductCount: 1},
				{ID: "heels", Name: "Heels", Slug: "heels", ProductCount: 1},
			},
			ProductCount: 2,
		},
	}
}
