package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/helpers"
)

type HomeHandler struct {
	catalog *catalog.Store
	render  *render.Render
}

func NewHomeHandler(c *catalog.Store, r *render.Render) *HomeHandler {
	return &HomeHandler{catalog: c, render: r}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	pageSpecificData := map[string]interface{}{
		"title":         "Velato",
		"Categories":    h.catalog.Categories(),
		"Featured":      h.catalog.Featured(4),
		"NewArrivals":   h.catalog.NewArrivals(4),
		"OnSale":        h.catalog.OnSale(4),
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
