package services

import (
	"errors"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type MenuPage struct {
	Categories     []entity.Category `json:"categories"`
	Products       []entity.Product  `json:"products"`
	ActiveCategory string            `json:"activeCategory"`
	SearchQuery    string            `json:"searchQuery"`
}

func (s *CatalogService) Menu(categorySlug, query string) (*MenuPage, error) {
	cats, err := s.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(categorySlug, query)
	if err != nil {
		return nil, err
	}
	active := categorySlug
	if active == "" {
		active = "all"
	}
	return &MenuPage{
		Categories:     cats,
		Products:       products,
		ActiveCategory: active,
		SearchQuery:    query,
	}, nil
}

func (s *CatalogService) HomepageOffers() ([]entity.Product, error) {
	return s.repo.HomepageOffers()
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.repo.ListCategories()
}

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	slug := in.Slug
	if slug == "" {
		slug = utils.Slugify(in.Name)
	}
	cat := &entity.Category{
		Name:        in.Name,
		Slug:        slug,
		Image:       in.Image,
		Description: in.Description,
	}
	if err := s.repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(id uint, updates map[string]any) error {
	if _, err := s.repo.FindCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.UpdateCategory(id, updates)
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.repo.FindCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.DeleteCategory(id)
}

type ProductIn struct {
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsAvailable *bool  `json:"isAvailable"`

	OfferTag  string `json:"offerTag" binding:"omitempty,oneof=new bestseller spicy discount limited"`
	OfferText string `json:"offerText"`

	IsHomepageOffer      bool   `json:"isHomepageOffer"`
	OfferTitle           string `json:"offerTitle"`
	OfferDiscountPercent int    `json:"offerDiscountPercent" binding:"min=0,max=100"`
}

func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, errors.New("invalid price")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	p := &entity.Product{
		CategoryID:           in.CategoryID,
		Name:                 in.Name,
		Price:                price.Round(2),
		Description:          in.Description,
		Image:                in.Image,
		IsAvailable:          available,
		OfferTag:             in.OfferTag,
		OfferText:            in.OfferText,
		IsHomepageOffer:      in.IsHomepageOffer,
		OfferTitle:           in.OfferTitle,
		OfferDiscountPercent: in.OfferDiscountPercent,
	}
	if err := s.repo.CreateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(id uint, updates map[string]any) error {
	if _, err := s.repo.FindProductByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.UpdateProduct(id, updates)
}

func (s *CatalogService) DeleteProduct(id uint) error {
	if _, err := s.repo.FindProductByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.DeleteProduct(id)
}
