package routes

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velato/storefront/app/auth"
	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/utils/renderer"
	"github.com/velato/storefront/app/utils/sessions"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry, err := auth.NewRegistry(auth.FixtureUsers())
	require.NoError(t, err)
	authenticator := auth.NewAuthenticator(registry)
	authenticator.Latency = 0

	router := NewRouter(Deps{
		Catalog:       catalog.NewStoreFromFixture(),
		Carts:         cart.NewStore(),
		Authenticator: authenticator,
		Sessions:      sessions.NewCookieSessionStore([]byte("0123456789abcdef0123456789abcdef")),
		Render:        renderer.NewWithDirectory("../../templates"),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHomePage(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "VELATO")
	assert.Contains(t, body, "New Arrivals")
}

func TestProductDetail(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/product/p-001")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Silk Charmeuse Wrap Dress")

	resp, body = get(t, client, server.URL+"/product/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page Not Found")
}

func TestCategoryPage(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/category/women")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Silk Charmeuse Wrap Dress")

	// Pseudo-categories share the route.
	resp, body = get(t, client, server.URL+"/category/sale")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Suede Chelsea Boots")

	resp, _ = get(t, client, server.URL+"/category/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryPage_FiltersNarrowTheListing(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	_, body := get(t, client, server.URL+"/category/women?material=Cashmere")
	assert.Contains(t, body, "Double-Breasted Cashmere Coat")
	assert.NotContains(t, body, "Pleated Wool Trousers")

	_, body = get(t, client, server.URL+"/category/men?price_max=200")
	assert.Contains(t, body, "Garment-Dyed Poplin Shirt")
	assert.NotContains(t, body, "Unstructured Linen Blazer")
}

func TestSearchPage(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/search?q=cashmere")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Double-Breasted Cashmere Coat")

	_, body = get(t, client, server.URL+"/search?q=")
	assert.Contains(t, body, "Type something to search")

	_, body = get(t, client, server.URL+"/search?q=zzzzzz")
	assert.Contains(t, body, "Nothing found")
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/no/such/page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page Not Found")
}

func TestCartFlow(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	_, body := get(t, client, server.URL+"/cart")
	assert.Contains(t, body, "Your bag is empty")

	_, body = postForm(t, client, server.URL+"/cart/add", url.Values{
		"product_id": {"p-001"},
		"size":       {"m"},
		"color":      {"ivory"},
		"quantity":   {"2"},
	})
	assert.Contains(t, body, "Silk Charmeuse Wrap Dress")
	assert.Contains(t, body, "Added to your bag.")

	// Out-of-stock variants are rejected at selection time.
	resp, err := client.PostForm(server.URL+"/cart/add", url.Values{
		"product_id": {"p-001"},
		"size":       {"l"},
		"color":      {"ivory"},
		"quantity":   {"1"},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Request.URL.String(), "/product/p-001")
	resp.Body.Close()

	_, body = get(t, client, server.URL+"/cart")
	assert.Contains(t, body, "Silk Charmeuse Wrap Dress")
	assert.NotContains(t, body, "Your bag is empty")
}

func TestCheckout_MockOrderClearsCart(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	postForm(t, client, server.URL+"/cart/add", url.Values{
		"product_id": {"p-010"},
		"size":       {"m"},
		"color":      {"white"},
		"quantity":   {"1"},
	})

	resp, body := postForm(t, client, server.URL+"/checkout", url.Values{
		"email":           {"isabella@example.com"},
		"first_name":      {"Isabella"},
		"last_name":       {"Chen"},
		"street":          {"5 Via Roma"},
		"city":            {"Milan"},
		"zip_code":        {"20121"},
		"country":         {"Italy"},
		"shipping_method": {"standard"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Your order has been placed.")

	_, body = get(t, client, server.URL+"/cart")
	assert.Contains(t, body, "Your bag is empty")
}

func TestCheckout_MissingFieldsStayOnForm(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	postForm(t, client, server.URL+"/cart/add", url.Values{
		"product_id": {"p-010"},
		"size":       {"m"},
		"color":      {"white"},
		"quantity":   {"1"},
	})

	resp, err := client.PostForm(server.URL+"/checkout", url.Values{
		"email": {"not-an-email"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.True(t, strings.HasPrefix(resp.Request.URL.Path, "/checkout"))
}

func TestAuthFlow(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	// Anonymous visitors cannot see the account page.
	resp, _ := get(t, client, server.URL+"/account")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Request.URL.Path)

	// Bad credentials bounce back with the generic message.
	_, body := postForm(t, client, server.URL+"/login", url.Values{
		"email":    {"isabella@example.com"},
		"password": {"wrong"},
	})
	assert.Contains(t, body, "Invalid email or password.")

	// A seeded credential pair signs in and the identity survives
	// subsequent requests.
	_, body = postForm(t, client, server.URL+"/login", url.Values{
		"email":    {"isabella@example.com"},
		"password": {"password123"},
	})
	assert.Contains(t, body, "Welcome back, Isabella!")

	resp, body = get(t, client, server.URL+"/account")
	assert.Equal(t, "/account", resp.Request.URL.Path)
	assert.Contains(t, body, "isabella@example.com")

	// Logout returns the visitor to the anonymous state.
	postForm(t, client, server.URL+"/logout", url.Values{})
	resp, _ = get(t, client, server.URL+"/account")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestSignupFlow(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	_, body := postForm(t, client, server.URL+"/signup", url.Values{
		"email":            {"isabella@example.com"},
		"first_name":       {"Isabella"},
		"last_name":        {"Imposter"},
		"password":         {"secret99"},
		"confirm_password": {"secret99"},
	})
	assert.Contains(t, body, "already exists")

	_, body = postForm(t, client, server.URL+"/signup", url.Values{
		"email":            {"nora@example.com"},
		"first_name":       {"Nora"},
		"last_name":        {"Feld"},
		"password":         {"secret99"},
		"confirm_password": {"secret99"},
	})
	assert.Contains(t, body, "Welcome to Velato, Nora!")

	resp, body := get(t, client, server.URL+"/account")
	assert.Equal(t, "/account", resp.Request.URL.Path)
	assert.Contains(t, body, "nora@example.com")
}
