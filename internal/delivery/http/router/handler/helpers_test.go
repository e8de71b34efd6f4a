package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	deliverymiddleware "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/validator"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/imagestore"
	"marketplace/internal/infra/persistence/sqldb"
	"marketplace/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer runs the whole HTTP surface against a throwaway SQLite
// database, exercising routing, middleware and handlers together.
type testServer struct {
	echo *echo.Echo
	cfg  *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Chdir(t.TempDir())

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, sqldb.Migrate(db))

	cfg := &config.Config{}
	cfg.Session.Secret = "handler-test-secret"
	cfg.Session.CookieName = "marketplace_session"
	cfg.Session.TTL = time.Hour
	cfg.Catalog.HomePageSize = 4
	cfg.Catalog.ListPageSize = 9
	cfg.Uploads.Folder = "static/images/uploads"
	cfg.Uploads.DefaultImageURL = "/static/images/no_image.jpg"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasher()
	tokens, err := auth.NewSessionTokenService(cfg)
	require.NoError(t, err)

	userRepo := sqldb.NewUserRepository(db)
	productRepo := sqldb.NewProductRepository(db)
	categoryRepo := sqldb.NewCategoryRepository(db)
	cartRepo := sqldb.NewCartRepository(db)
	require.NoError(t, categoryRepo.SeedDefaults(context.Background()))

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		CartRepo:     cartRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       log,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		TxManager:    sqldb.NewTransactionManager(db),
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		CartRepo:     cartRepo,
		ImageStore:   imagestore.NewLocalImageStore(cfg),
		Config:       cfg,
		Logger:       log,
	})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      log,
	})

	authMW := deliverymiddleware.NewAuthMiddleware(tokens, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(log).HandleHTTPError

	r := struct {
		homeHandler    *HomeHandler
		authHandler    *AuthHandler
		productHandler *ProductHandler
		cartHandler    *CartHandler
	}{
		NewHomeHandler(catalogUC),
		NewAuthHandler(userUC, cfg, log),
		NewProductHandler(catalogUC, log),
		NewCartHandler(CartHandlerParams{
			Usecase:  cartUC,
			TokenSvc: tokens,
			Config:   cfg,
			Logger:   log,
		}),
	}

	e.GET("/health", HealthCheck)
	e.GET("/", r.homeHandler.Home, authMW.Identify)
	e.GET("/contact", r.homeHandler.Contact, authMW.Identify)
	e.POST("/auth/register", r.authHandler.Register)
	e.POST("/auth/login", r.authHandler.Login)
	e.GET("/auth/logout", r.authHandler.Logout)
	e.GET("/product/search_results", r.productHandler.Search, authMW.Identify)
	e.GET("/product/browse", r.homeHandler.Browse, authMW.Identify)
	e.GET("/product/add", r.productHandler.AddForm, authMW.Authenticate)
	e.POST("/product/add", r.productHandler.Add, authMW.Authenticate)
	e.GET("/product/my-products", r.productHandler.MyProducts, authMW.Authenticate)
	e.POST("/product/update/:id", r.productHandler.Update, authMW.Authenticate)
	e.GET("/product/delete/:id", r.productHandler.Delete, authMW.Authenticate)
	e.GET("/product/:id", r.productHandler.Detail, authMW.Identify)
	e.GET("/cart", r.cartHandler.View, authMW.Authenticate)
	e.POST("/cart/add/:id", r.cartHandler.Add, authMW.Authenticate)
	e.POST("/cart/remove/:id", r.cartHandler.Remove, authMW.Authenticate)

	return &testServer{echo: e, cfg: cfg}
}

// do runs one request through the echo server and decodes the envelope.
func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

// register creates an account through the HTTP surface.
func (s *testServer) register(t *testing.T, username, password string) {
	t.Helper()

	rec, _ := s.do(t, formRequest("/auth/register", url.Values{
		"username": {username},
		"password": {password},
	}))
	require.Equal(t, http.StatusCreated, rec.Code)
}

// login returns the session cookie issued for the account.
func (s *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec, _ := s.do(t, formRequest("/auth/login", url.Values{
		"username": {username},
		"password": {password},
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == s.cfg.Session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response carries no session cookie")

	return nil
}

// addProduct lists a product through the HTTP surface and returns its id.
func (s *testServer) addProduct(t *testing.T, session *http.Cookie, title, price string) uint {
	t.Helper()

	req := formRequest("/product/add", url.Values{
		"title":    {title},
		"price":    {price},
		"category": {"1"},
	})
	req.AddCookie(session)

	rec, body := s.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	id, ok := data["id"].(float64)
	require.True(t, ok)

	return uint(id)
}
