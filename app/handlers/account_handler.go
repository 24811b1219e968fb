package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/velato/storefront/app/helpers"
	"github.com/velato/storefront/app/middlewares"
	"github.com/velato/storefront/app/utils/breadcrumb"
)

type AccountHandler struct {
	render *render.Render
}

func NewAccountHandler(r *render.Render) *AccountHandler {
	return &AccountHandler{render: r}
}

func (h *AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "My Account", URL: "/account"},
	}

	pageSpecificData := map[string]interface{}{
		"title":       "My Account",
		"User":        user,
		"Breadcrumbs": breadcrumbs,
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "account", data)
}
