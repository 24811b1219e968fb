package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/unrolled/render"
	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/helpers"
	"github.com/velato/storefront/app/utils/breadcrumb"
	"github.com/velato/storefront/app/utils/sessions"
)

type CartHandler struct {
	catalog      *catalog.Store
	carts        *cart.Store
	sessionStore sessions.SessionStore
	render       *render.Render
}

func NewCartHandler(c *catalog.Store, carts *cart.Store, sessionStore sessions.SessionStore, r *render.Render) *CartHandler {
	return &CartHandler{catalog: c, carts: carts, sessionStore: sessionStore, render: r}
}

func (h *CartHandler) currentCart(w http.ResponseWriter, r *http.Request) *cart.Cart {
	cartID, c := h.carts.Get(h.sessionStore.GetCartID(r))
	if err := h.sessionStore.SetCartID(w, r, cartID); err != nil {
		log.Printf("CartHandler: failed to persist cart id: %v", err)
	}
	return c
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.currentCart(w, r)

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Shopping Bag", URL: "/cart"},
	}

	totals := c.Totals()
	pageSpecificData := map[string]interface{}{
		"title":         "Shopping Bag",
		"Items":         c.Items(),
		"Subtotal":      totals.Subtotal,
		"Tax":           totals.Tax,
		"Shipping":      totals.Shipping,
		"Total":         totals.Total,
		"Breadcrumbs":   breadcrumbs,
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

// AddToCart handles the add-to-bag form on the product page. The chosen
// size and color must be variants of the product and in stock at selection
// time; the cart itself does not re-validate stock later.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/cart?status=error&message="+url.QueryEscape("Could not process the request."), http.StatusSeeOther)
		return
	}

	productID := r.FormValue("product_id")
	product, err := h.catalog.ProductByID(productID)
	if err != nil {
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Product not found."), http.StatusSeeOther)
		return
	}

	fail := func(msg string) {
		http.Redirect(w, r, fmt.Sprintf("/product/%s?status=error&message=%s", productID, url.QueryEscape(msg)), http.StatusSeeOther)
	}

	size, ok := product.SizeByID(r.FormValue("size"))
	if !ok || !size.InStock {
		fail("Please choose an available size.")
		return
	}
	color, ok := product.ColorByID(r.FormValue("color"))
	if !ok || !color.InStock {
		fail("Please choose an available color.")
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	c := h.currentCart(w, r)
	item := c.Add(product, size, color, quantity)
	log.Printf("CartHandler: added %s (size %s, color %s) x%d as item %s", product.Name, size.Name, color.Name, quantity, item.ID)

	http.Redirect(w, r, "/cart?status=success&message="+url.QueryEscape("Added to your bag."), http.StatusSeeOther)
}

// UpdateItem sets a line item's quantity. Zero removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	itemID := r.FormValue("item_id")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 0 {
		http.Redirect(w, r, "/cart?status=error&message="+url.QueryEscape("Invalid quantity."), http.StatusSeeOther)
		return
	}

	c := h.currentCart(w, r)
	c.SetQuantity(itemID, quantity)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	c := h.currentCart(w, r)
	c.Remove(r.FormValue("item_id"))

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
