package repository

import (
	"strings"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) FindCategoryByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListProducts filters by category slug ("" or "all" means every
// category) and case-insensitive name substring.
func (r *CatalogRepository) ListProducts(categorySlug, query string) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{})
	if categorySlug != "" && categorySlug != "all" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}
	if query != "" {
		q = q.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var products []entity.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *CatalogRepository) FindProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) HomepageOffers() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("is_homepage_offer = ?", true).Find(&products).Error
	return products, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCategory removes the category and all of its products.
func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *CatalogRepository) UpdateProduct(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
