package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/velato/storefront/app/helpers"
)

// StaticHandler serves the informational pages.
type StaticHandler struct {
	render *render.Render
}

func NewStaticHandler(r *render.Render) *StaticHandler {
	return &StaticHandler{render: r}
}

func (h *StaticHandler) About(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"title": "About Velato"})
	_ = h.render.HTML(w, http.StatusOK, "about", data)
}

func (h *StaticHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"title": "Contact"})
	_ = h.render.HTML(w, http.StatusOK, "contact", data)
}
