package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Category{}, &entity.Product{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (entity.Category, entity.Category) {
	t.Helper()
	starters := entity.Category{Name: "Starters", Slug: "starters"}
	mains := entity.Category{Name: "Main Course", Slug: "main-course"}
	require.NoError(t, db.Create(&starters).Error)
	require.NoError(t, db.Create(&mains).Error)

	products := []entity.Product{
		{Name: "Paneer Tikka", Price: decimal.RequireFromString("180.00"), CategoryID: starters.ID},
		{Name: "Veg Spring Roll", Price: decimal.RequireFromString("120.00"), CategoryID: starters.ID},
		{Name: "Paneer Butter Masala", Price: decimal.RequireFromString("220.00"), CategoryID: mains.ID},
	}
	require.NoError(t, db.Create(&products).Error)
	return starters, mains
}

func TestListProducts_AllWhenNoFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, db)

	got, err := repo.ListProducts("", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = repo.ListProducts("all", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestListProducts_FilterByCategorySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, db)

	got, err := repo.ListProducts("starters", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NotEqual(t, "Paneer Butter Masala", p.Name)
	}
}

func TestListProducts_SearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, db)

	got, err := repo.ListProducts("", "PANEER")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListProducts("main-course", "paneer")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paneer Butter Masala", got[0].Name)
}

func TestListProducts_UnknownSlugIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	seedCatalog(t, db)

	got, err := repo.ListProducts("desserts", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteCategory_CascadesProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	starters, _ := seedCatalog(t, db)

	require.NoError(t, repo.DeleteCategory(starters.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Product{}).Where("category_id = ?", starters.ID).Count(&count).Error)
	assert.Zero(t, count)

	remaining, err := repo.ListProducts("", "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestHomepageOffers(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	starters, _ := seedCatalog(t, db)

	offer := entity.Product{
		Name:                 "Masala Dosa",
		Price:                decimal.RequireFromString("90.00"),
		CategoryID:           starters.ID,
		IsHomepageOffer:      true,
		OfferTitle:           "Breakfast Special",
		OfferDiscountPercent: 20,
	}
	require.NoError(t, db.Create(&offer).Error)

	got, err := repo.HomepageOffers()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Masala Dosa", got[0].Name)
}
