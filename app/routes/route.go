package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velato/storefront/app/auth"
	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/handlers"
	"github.com/velato/storefront/app/middlewares"
	"github.com/velato/storefront/app/utils/sessions"
)

// Deps collects the stores the router wires into the handlers. Everything
// is passed explicitly so tests can build isolated routers around fixture
// stores.
type Deps struct {
	Catalog       *catalog.Store
	Carts         *cart.Store
	Authenticator *auth.Authenticator
	Sessions      sessions.SessionStore
	Render        *render.Render

	// CSRFKey enables form protection when non-empty. Tests leave it nil.
	CSRFKey []byte
}

func NewRouter(deps Deps) http.Handler {
	router := mux.NewRouter()

	validate := validator.New()

	homeHandler := handlers.NewHomeHandler(deps.Catalog, deps.Render)
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.Render)
	cartHandler := handlers.NewCartHandler(deps.Catalog, deps.Carts, deps.Sessions, deps.Render)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Carts, deps.Sessions, deps.Render, validate)
	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.Sessions, deps.Render, validate)
	accountHandler := handlers.NewAccountHandler(deps.Render)
	staticHandler := handlers.NewStaticHandler(deps.Render)

	router.Use(middlewares.CurrentUserMiddleware(deps.Sessions))
	router.Use(middlewares.CartCountMiddleware(deps.Sessions, deps.Carts))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/product/{id}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/category/{slug}", productHandler.CategoryPage).Methods("GET")
	router.HandleFunc("/search", productHandler.Search).Methods("GET")

	router.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/cart/add", cartHandler.AddToCart).Methods("POST")
	router.HandleFunc("/cart/update", cartHandler.UpdateItem).Methods("POST")
	router.HandleFunc("/cart/remove", cartHandler.RemoveItem).Methods("POST")

	router.HandleFunc("/checkout", checkoutHandler.CheckoutGet).Methods("GET")
	router.HandleFunc("/checkout", checkoutHandler.CheckoutPost).Methods("POST")

	router.HandleFunc("/login", authHandler.LoginGetHandler).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPostHandler).Methods("POST")
	router.HandleFunc("/signup", authHandler.SignupGetHandler).Methods("GET")
	router.HandleFunc("/signup", authHandler.SignupPostHandler).Methods("POST")
	router.HandleFunc("/logout", authHandler.LogoutHandler).Methods("POST")

	account := router.PathPrefix("/account").Subrouter()
	account.Use(middlewares.RequireUserMiddleware)
	account.HandleFunc("", accountHandler.Account).Methods("GET")

	router.HandleFunc("/about", staticHandler.About).Methods("GET")
	router.HandleFunc("/contact", staticHandler.Contact).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(productHandler.NotFound)

	if len(deps.CSRFKey) > 0 {
		protect := csrf.Protect(deps.CSRFKey, csrf.Secure(false), csrf.Path("/"))
		return protect(router)
	}
	return router
}
