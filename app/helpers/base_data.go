package helpers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/velato/storefront/app/middlewares"
	"github.com/velato/storefront/app/utils/breadcrumb"
)

// GetBaseData merges page-specific template data with the ambient values
// every page needs: the signed-in user, the cart badge count and default
// breadcrumbs.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if count, ok := r.Context().Value(middlewares.CartCountKey).(int); ok {
		pageSpecificData["CartCount"] = count
	} else {
		pageSpecificData["CartCount"] = 0
	}

	if user, ok := middlewares.UserFromContext(r.Context()); ok {
		pageSpecificData["CurrentUser"] = user
	}

	// Empty when the router runs without CSRF protection, as in tests.
	pageSpecificData["csrfField"] = csrf.TemplateField(r)

	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	return pageSpecificData
}
