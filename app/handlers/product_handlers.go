package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/helpers"
	"github.com/velato/storefront/app/models"
	"github.com/velato/storefront/app/utils/breadcrumb"
)

type ProductHandler struct {
	catalog *catalog.Store
	render  *render.Render
}

func NewProductHandler(c *catalog.Store, r *render.Render) *ProductHandler {
	return &ProductHandler{catalog: c, render: r}
}

// pseudoCategoryTitles names the flag-backed listings that share the
// category route but filter on product flags instead of a category id.
var pseudoCategoryTitles = map[string]string{
	catalog.PseudoFeatured:    "Featured",
	catalog.PseudoNewArrivals: "New Arrivals",
	catalog.PseudoSale:        "Sale",
}

// CategoryPage renders /category/{slug} with the active filters applied.
func (h *ProductHandler) CategoryPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var (
		title           string
		currentCategory *models.Category
	)
	if pseudoTitle, ok := pseudoCategoryTitles[slug]; ok {
		title = pseudoTitle
	} else {
		category, err := h.catalog.CategoryBySlug(slug)
		if err != nil {
			h.NotFound(w, r)
			return
		}
		currentCategory = category
		title = category.Name
	}

	query := catalog.Query{
		Category:    slug,
		Subcategory: r.URL.Query().Get("sub"),
		Brands:      r.URL.Query()["brand"],
		Materials:   r.URL.Query()["material"],
		Sort:        catalog.ParseSortKey(r.URL.Query().Get("sort")),
	}
	if raw := r.URL.Query().Get("price_min"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil && !v.IsNegative() {
			query.PriceMin = v
		}
	}
	if raw := r.URL.Query().Get("price_max"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil && !v.IsNegative() {
			query.PriceMax = v
		}
	}

	products := h.catalog.Find(query)

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: title, URL: "/category/" + slug},
	}

	priceMin, priceMax := h.catalog.PriceBounds()
	pageSpecificData := map[string]interface{}{
		"title":           title,
		"Products":        products,
		"CurrentCategory": currentCategory,
		"CategorySlug":    slug,
		"Subcategory":     query.Subcategory,
		"Brands":          h.catalog.Brands(),
		"Materials":       h.catalog.Materials(),
		"PriceFloor":      priceMin,
		"PriceCeiling":    priceMax,
		"SelectedBrands":  query.Brands,
		"SelectedMats":    query.Materials,
		"Sort":            string(query.Sort),
		"Breadcrumbs":     breadcrumbs,
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "category", data)
}

// ProductDetail renders /product/{id}, or the not-found view for ids
// absent from the catalog.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.catalog.ProductByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
	}
	if category, err := h.catalog.CategoryBySlug(product.Category); err == nil {
		breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{
			Name: category.Name,
			URL:  "/category/" + category.Slug,
		})
	}
	breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{
		Name: product.Name,
		URL:  "/product/" + product.ID,
	})

	pageSpecificData := map[string]interface{}{
		"title":         product.Name,
		"Product":       product,
		"Breadcrumbs":   breadcrumbs,
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

// Search renders /search?q=. An empty query shows the empty state; there
// is no browse-all fallback.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	sortKey := catalog.ParseSortKey(r.URL.Query().Get("sort"))

	products := h.catalog.Search(query, sortKey)

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Search", URL: "/search"},
	}

	pageSpecificData := map[string]interface{}{
		"title":       "Search",
		"Query":       query,
		"Products":    products,
		"Sort":        string(sortKey),
		"Breadcrumbs": breadcrumbs,
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "search", data)
}

// NotFound renders the dedicated not-found view with a 404 status.
func (h *ProductHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"title": "Page Not Found",
	})
	_ = h.render.HTML(w, http.StatusNotFound, "notfound", data)
}
