package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/helpers"
	"github.com/velato/storefront/app/utils/breadcrumb"
	"github.com/velato/storefront/app/utils/sessions"
)

// CheckoutHandler is a non-functional mockup: it validates the form,
// logs the would-be order and empties the cart. No payment happens.
type CheckoutHandler struct {
	carts        *cart.Store
	sessionStore sessions.SessionStore
	render       *render.Render
	validator    *validator.Validate
}

func NewCheckoutHandler(carts *cart.Store, sessionStore sessions.SessionStore, r *render.Render, v *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, sessionStore: sessionStore, render: r, validator: v}
}

type CheckoutForm struct {
	Email          string `form:"email" validate:"required,email"`
	FirstName      string `form:"first_name" validate:"required,min=2,max=100"`
	LastName       string `form:"last_name" validate:"required,min=2,max=100"`
	Street         string `form:"street" validate:"required"`
	City           string `form:"city" validate:"required"`
	ZipCode        string `form:"zip_code" validate:"required"`
	Country        string `form:"country" validate:"required"`
	ShippingMethod string `form:"shipping_method" validate:"required,oneof=standard express overnight"`
}

func (h *CheckoutHandler) CheckoutGet(w http.ResponseWriter, r *http.Request) {
	_, c := h.carts.Get(h.sessionStore.GetCartID(r))
	if c.Len() == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Shopping Bag", URL: "/cart"},
		{Name: "Checkout", URL: "/checkout"},
	}

	totals := c.Totals()
	pageSpecificData := map[string]interface{}{
		"title":         "Checkout",
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
	_ = h.render.HTML(w, http.StatusOK, "checkout", data)
}

func (h *CheckoutHandler) CheckoutPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Could not process the request."), http.StatusSeeOther)
		return
	}

	form := CheckoutForm{
		Email:          r.FormValue("email"),
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		Street:         r.FormValue("street"),
		City:           r.FormValue("city"),
		ZipCode:        r.FormValue("zip_code"),
		Country:        r.FormValue("country"),
		ShippingMethod: r.FormValue("shipping_method"),
	}
	if err := h.validator.Struct(form); err != nil {
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Please fill in every required field."), http.StatusSeeOther)
		return
	}

	cartID, c := h.carts.Get(h.sessionStore.GetCartID(r))
	if c.Len() == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	totals := c.Totals()
	log.Printf("CheckoutHandler: mock order for cart %s: %d line(s), total %s, ship %s to %s, %s",
		cartID, c.Len(), totals.Total.StringFixed(2), form.ShippingMethod, form.City, form.Country)
	c.Clear()

	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("Thank you! Your order has been placed."), http.StatusSeeOther)
}
