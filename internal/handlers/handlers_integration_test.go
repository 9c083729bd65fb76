package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/oauth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testJWTSecret = "integration-test-secret"
	testClientURL = "http://localhost:5173"
)

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *services.TokenService
}

// setupApp wires the full HTTP surface over an in-memory sqlite database,
// mirroring the production wiring minus the broker.
func setupApp(t *testing.T, providers ...oauth.Provider) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Auth{},
		&models.Product{},
		&models.State{},
		&models.ShippingType{},
		&models.Order{},
		&models.OrderProduct{},
	))

	userRepo := repositories.NewGORMUserRepository(db)
	authRepo := repositories.NewGORMAuthRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	stateRepo := repositories.NewGORMStateRepository(db)
	shippingRepo := repositories.NewGORMShippingTypeRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	tokenService := services.NewTokenService(testJWTSecret, services.DefaultTokenTTL)
	authService := services.NewAuthService(userRepo, authRepo, tokenService)
	productService := services.NewProductService(productRepo)
	catalogService := services.NewCatalogService(stateRepo, shippingRepo)
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, shippingRepo, nil)

	authHandler := handlers.NewAuthHandler(authService, tokenService, providers, testClientURL)
	productHandler := handlers.NewProductHandler(productService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	api := app.Group("/api")

	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(tokenService))
	authHandler.RegisterProtectedRoutes(protected)
	userHandler.RegisterProtectedRoutes(protected)
	orderHandler.RegisterProtectedRoutes(protected)

	return &testEnv{app: app, db: db, tokens: tokenService}
}

func (e *testEnv) seedCatalog(t *testing.T) {
	t.Helper()
	require.NoError(t, e.db.Create(&[]models.Product{
		{Name: "Walnut Desk", Price: 450.00, Category: "desks", InStock: true, ImgURL: "http://img/desk.png"},
		{Name: "Oak Chair", Price: 120.00, Category: "chairs", InStock: true, ImgURL: "http://img/chair.png"},
		{Name: "Pine Chair", Price: 80.00, Category: "chairs", InStock: true, ImgURL: "http://img/pine.png"},
	}).Error)
	require.NoError(t, e.db.Create(&[]models.State{
		{Abbr: "CA", Name: "California"},
		{Abbr: "NY", Name: "New York"},
	}).Error)
	require.NoError(t, e.db.Create(&[]models.ShippingType{
		{Value: "ground", Label: "Ground (5-7 days)", Price: 10.00},
		{Value: "express", Label: "Express (2 days)", Price: 25.00},
	}).Error)
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// register creates a user through the API and returns the session token.
func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()
	resp, err := e.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     email,
		"password":  password,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	env := setupApp(t)

	env.register(t, "jane@example.com", "sup3rsecret")

	// Registering the same email again conflicts.
	resp, err := env.app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "JANE@example.com",
		"password":  "sup3rsecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Login with the wrong password is rejected.
	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Login with the right one returns a token that works against /auth/me.
	resp, err = env.app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "Jane@Example.com",
		"password": "sup3rsecret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["isValid"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", user["email"])
	// A password-only account has no identity links yet.
	assert.Empty(t, user["authProviders"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	env := setupApp(t)

	for _, target := range []string{"/api/auth/me", "/api/user-auth/", "/api/orders/"} {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}

	// Garbage tokens are rejected too.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	env := setupApp(t)
	env.seedCatalog(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["products"], 3)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/products/category/chairs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["products"], 2)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/products/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"desks", "chairs"}, data["categories"])

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/states", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	states := decodeBody(t, resp)["result"].([]interface{})
	assert.Len(t, states, 2)
	first := states[0].(map[string]interface{})
	assert.Equal(t, "CA", first["abbr"])
	assert.Equal(t, "California", first["state"])

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/shippingTypes", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["shippingTypes"], 2)
}

func TestOrderCreateAndFetch(t *testing.T) {
	env := setupApp(t)
	env.seedCatalog(t)
	token := env.register(t, "buyer@example.com", "sup3rsecret")

	address := fiber.Map{
		"firstName": "Jane", "lastName": "Doe",
		"address1": "1 Main St", "city": "Springfield",
		"state": "CA", "zip": "90210", "phone": "555-0100",
	}
	req := jsonRequest(http.MethodPost, "/api/orders/create", fiber.Map{
		"order": fiber.Map{
			"billing":        address,
			"shipping":       address,
			"shippingTypeId": 2,
			"orderTax":       12.50,
			"orderProducts": []fiber.Map{
				{"productId": 1, "qty": 1},
				{"productId": 2, "qty": 2},
			},
		},
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["productsAdded"])
	order := data["order"].(map[string]interface{})
	// 450 + 2x120, priced from the product table, not the payload.
	assert.Equal(t, 690.00, order["orderSubTotal"])
	assert.Equal(t, 25.00, order["orderShippingCost"])

	orderID := uint(order["id"].(float64))

	// The owner can fetch it back with its line items.
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	fetched := decodeBody(t, resp)["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Len(t, fetched["orderProducts"], 2)

	// Another user sees a 404, not someone else's order.
	otherToken := env.register(t, "other@example.com", "sup3rsecret")
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	env := setupApp(t)
	env.seedCatalog(t)
	token := env.register(t, "buyer@example.com", "sup3rsecret")

	address := fiber.Map{
		"firstName": "Jane", "lastName": "Doe",
		"address1": "1 Main St", "city": "Springfield",
		"state": "CA", "zip": "90210", "phone": "555-0100",
	}
	req := jsonRequest(http.MethodPost, "/api/orders/create", fiber.Map{
		"order": fiber.Map{
			"billing":        address,
			"shipping":       address,
			"shippingTypeId": 1,
			"orderProducts":  []fiber.Map{{"productId": 9999, "qty": 1}},
		},
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// fakeGoogle spins up a provider look-alike with token and userinfo
// endpoints, returning a provider pointed at it.
func fakeGoogle(t *testing.T, sub, email, name, picture string) *oauth.GoogleProvider {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "fake-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub": sub, "email": email, "name": name, "picture": picture,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
		AuthURL:      srv.URL + "/auth",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
	})
}

// fakeGitHub is the GitHub counterpart of fakeGoogle. The /user payload
// omits the email so the /user/emails fallback is exercised.
func fakeGitHub(t *testing.T, id int64, email, name string) *oauth.GitHubProvider {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "fake-access-token",
			"token_type":   "bearer",
			"scope":        "user:email",
		})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": id, "login": "janedoe", "name": name,
		})
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"email": "secondary@example.com", "primary": false, "verified": true},
			{"email": email, "primary": true, "verified": true},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return oauth.NewGitHubProvider(oauth.GitHubConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/github/callback",
		AuthURL:      srv.URL + "/auth",
		TokenURL:     srv.URL + "/token",
		UserURL:      srv.URL + "/user",
		EmailsURL:    srv.URL + "/user/emails",
	})
}

// startOAuth performs the redirect leg and returns the state nonce and the
// cookie header value carrying it.
func startOAuth(t *testing.T, env *testEnv, provider string) (state, cookie string) {
	t.Helper()
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/"+provider, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state = loc.Query().Get("state")
	require.NotEmpty(t, state)

	for _, c := range resp.Cookies() {
		if c.Name == "oauth_state" {
			cookie = c.Name + "=" + c.Value
		}
	}
	require.NotEmpty(t, cookie)
	return state, cookie
}

func TestOAuthCallbackFlow(t *testing.T) {
	provider := fakeGoogle(t, "google-sub-1", "oauth@example.com", "Jane Doe", "http://img/jane.png")
	env := setupApp(t, provider)

	state, cookie := startOAuth(t, env, "google")

	req := httptest.NewRequest(http.MethodGet,
		"/api/auth/google/callback?state="+state+"&code=fake-code", nil)
	req.Header.Set("Cookie", cookie)
	resp, err := env.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, testClientURL+"/auth/callback", loc.Scheme+"://"+loc.Host+loc.Path)
	assert.Equal(t, "google", loc.Query().Get("provider"))

	token := loc.Query().Get("token")
	require.NotEmpty(t, token)
	userID, ok := env.tokens.Verify(token)
	require.True(t, ok)

	// The resolved user carries the split display name and the avatar.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, "Jane", user["firstName"])
	assert.Equal(t, "Doe", user["lastName"])
	assert.Equal(t, "oauth@example.com", user["email"])
	assert.Equal(t, "http://img/jane.png", user["avatar"])
	assert.Equal(t, []interface{}{"google"}, user["authProviders"])

	// A second sign-in resolves to the same account.
	state, cookie = startOAuth(t, env, "google")
	req = httptest.NewRequest(http.MethodGet,
		"/api/auth/google/callback?state="+state+"&code=fake-code", nil)
	req.Header.Set("Cookie", cookie)
	resp, err = env.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc, err = url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	secondID, ok := env.tokens.Verify(loc.Query().Get("token"))
	require.True(t, ok)
	assert.Equal(t, userID, secondID)

	var userCount int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)
}

func TestOAuthCallbackLinksExistingEmail(t *testing.T) {
	google := fakeGoogle(t, "google-sub-2", "jane@example.com", "Jane Doe", "")
	github := fakeGitHub(t, 4242, "jane@example.com", "Jane Doe")
	env := setupApp(t, google, github)

	localToken := env.register(t, "jane@example.com", "sup3rsecret")
	localID, ok := env.tokens.Verify(localToken)
	require.True(t, ok)

	// Both providers resolve to the password-registered account by email.
	for _, name := range []string{"google", "github"} {
		state, cookie := startOAuth(t, env, name)
		req := httptest.NewRequest(http.MethodGet,
			"/api/auth/"+name+"/callback?state="+state+"&code=fake-code", nil)
		req.Header.Set("Cookie", cookie)
		resp, err := env.app.Test(req, int(5*time.Second/time.Millisecond))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusFound, resp.StatusCode)

		loc, err := url.Parse(resp.Header.Get("Location"))
		require.NoError(t, err)
		oauthID, ok := env.tokens.Verify(loc.Query().Get("token"))
		require.True(t, ok)
		assert.Equal(t, localID, oauthID, name)
	}

	var userCount int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)

	req := httptest.NewRequest(http.MethodGet, "/api/user-auth/", nil)
	req.Header.Set("Authorization", "Bearer "+localToken)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	methods := decodeBody(t, resp)["data"].(map[string]interface{})["authProviders"].([]interface{})
	require.Len(t, methods, 2)

	var googleAuthID, githubAuthID float64
	for _, m := range methods {
		entry := m.(map[string]interface{})
		switch entry["provider"] {
		case "google":
			googleAuthID = entry["id"].(float64)
		case "github":
			githubAuthID = entry["id"].(float64)
		}
	}
	require.NotZero(t, googleAuthID)
	require.NotZero(t, githubAuthID)

	// With two links one can go.
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/user-auth/%d", int(googleAuthID)), nil)
	req.Header.Set("Authorization", "Bearer "+localToken)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The last one cannot.
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/user-auth/%d", int(githubAuthID)), nil)
	req.Header.Set("Authorization", "Bearer "+localToken)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestOAuthCallbackStateMismatch(t *testing.T) {
	provider := fakeGoogle(t, "google-sub-3", "x@example.com", "X", "")
	env := setupApp(t, provider)

	_, cookie := startOAuth(t, env, "google")
	req := httptest.NewRequest(http.MethodGet,
		"/api/auth/google/callback?state=forged&code=fake-code", nil)
	req.Header.Set("Cookie", cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, testClientURL+"/login?error=state_mismatch", resp.Header.Get("Location"))
}

func TestOAuthCallbackProviderError(t *testing.T) {
	provider := fakeGoogle(t, "google-sub-4", "x@example.com", "X", "")
	env := setupApp(t, provider)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet,
		"/api/auth/google/callback?error=access_denied", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, testClientURL+"/login?error=true", resp.Header.Get("Location"))
}

func TestUpdateAddresses(t *testing.T) {
	env := setupApp(t)
	token := env.register(t, "jane@example.com", "sup3rsecret")

	req := jsonRequest(http.MethodPost, "/api/user/billing", fiber.Map{
		"billing": fiber.Map{
			"firstName": "Jane", "lastName": "Doe",
			"address1": "1 Main St", "city": "Springfield",
			"state": "CA", "zip": "90210", "phone": "555-0100",
		},
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := decodeBody(t, resp)["data"].(map[string]interface{})["user"].(map[string]interface{})
	billing := user["billing"].(map[string]interface{})
	assert.Equal(t, "1 Main St", billing["address1"])
	assert.Equal(t, "90210", billing["zip"])

	// Missing required fields are rejected.
	req = jsonRequest(http.MethodPost, "/api/user/shipping", fiber.Map{
		"shipping": fiber.Map{"firstName": "Jane"},
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
