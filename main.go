package main

import (
	"log"
	"net/http"
	"os"

	"github.com/velato/storefront/app/auth"
	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/cmd"
	"github.com/velato/storefront/app/configs"
	"github.com/velato/storefront/app/routes"
	"github.com/velato/storefront/app/utils/renderer"
	"github.com/velato/storefront/app/utils/sessions"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatal("failed to load session keys:", err)
	}

	catalogStore := catalog.NewStoreFromFixture()
	log.Printf("Catalog loaded: %d products, %d categories.", len(catalogStore.Products()), len(catalogStore.Categories()))

	registry, err := auth.NewRegistry(auth.FixtureUsers())
	if err != nil {
		log.Fatal("failed to build identity registry:", err)
	}

	csrfKey := keys.AuthKey
	if len(csrfKey) > 32 {
		csrfKey = csrfKey[:32]
	}

	router := routes.NewRouter(routes.Deps{
		Catalog:       catalogStore,
		Carts:         cart.NewStore(),
		Authenticator: auth.NewAuthenticator(registry),
		Sessions:      sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey),
		Render:        renderer.New(),
		CSRFKey:       csrfKey,
	})

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to start the server:", err)
	}
}
