package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/imagestore"
	"marketplace/internal/infra/persistence/sqldb"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway SQLite database.
type testEnv struct {
	db       *gorm.DB
	users    usecase.UserUsecase
	catalog  usecase.CatalogUsecase
	cart     usecase.CartUsecase
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	tokens   service.SessionTokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Chdir(t.TempDir())

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, sqldb.Migrate(db))

	cfg := &config.Config{}
	cfg.Session.Secret = "usecase-test-secret"
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

	return &testEnv{
		db: db,
		users: NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			CartRepo:     cartRepo,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       log,
		}),
		catalog: NewCatalogService(CatalogServiceParams{
			TxManager:    sqldb.NewTransactionManager(db),
			ProductRepo:  productRepo,
			CategoryRepo: categoryRepo,
			CartRepo:     cartRepo,
			ImageStore:   imagestore.NewLocalImageStore(cfg),
			Config:       cfg,
			Logger:       log,
		}),
		cart: NewCartService(CartServiceParams{
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			Logger:      log,
		}),
		userRepo: userRepo,
		cartRepo: cartRepo,
		tokens:   tokens,
	}
}

// register creates an account and returns its id.
func (env *testEnv) register(t *testing.T, username string) uint {
	t.Helper()

	out, err := env.users.Register(context.Background(), &usecase.RegisterInput{
		Username: username,
		Password: "password123",
	})
	require.NoError(t, err)

	return out.UserID
}

// listProduct creates a listing in the first seeded category.
func (env *testEnv) listProduct(t *testing.T, sellerID uint, title, price string) *entity.Product {
	t.Helper()

	product, err := env.catalog.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Title:      title,
		Price:      price,
		CategoryID: 1,
		SellerID:   sellerID,
	})
	require.NoError(t, err)

	return product
}
