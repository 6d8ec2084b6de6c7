package services

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Customer{},
		&entity.Category{}, &entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Table{}, &entity.Booking{},
	))
	return db
}

func newTestOfferStore(t *testing.T) *repository.OfferStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return repository.NewOfferStore(rdb)
}

type fixture struct {
	db     *gorm.DB
	store  *repository.OfferStore
	cart   *CartService
	offers *OfferService
	orders *OrderService

	orderRepo    *repository.OrderRepository
	catalogRepo  *repository.CatalogRepository
	customerRepo *repository.CustomerRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	store := newTestOfferStore(t)

	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	return &fixture{
		db:           db,
		store:        store,
		cart:         NewCartService(db, orderRepo, catalogRepo, customerRepo, store),
		offers:       NewOfferService(db, orderRepo, catalogRepo, customerRepo, store),
		orders:       NewOrderService(orderRepo, customerRepo),
		orderRepo:    orderRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
	}
}

func (f *fixture) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", Role: "customer"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) seedProduct(t *testing.T, name, price string) *entity.Product {
	t.Helper()
	cat := &entity.Category{Name: "Mains", Slug: "mains-" + uuid.NewString()}
	require.NoError(t, f.db.Create(cat).Error)
	p := &entity.Product{
		CategoryID:  cat.ID,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}
