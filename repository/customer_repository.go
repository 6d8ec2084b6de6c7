package repository

import (
	"errors"
	"strings"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{DB: db} }

func (r *CustomerRepository) FindByUserID(userID uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateForUser returns the user's customer profile, creating one
// from the user record on first cart interaction.
func (r *CustomerRepository) GetOrCreateForUser(userID uint) (*entity.Customer, error) {
	var c entity.Customer
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var u entity.User
		if err := r.DB.First(&u, userID).Error; err != nil {
			return nil, err
		}
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		if name == "" {
			name = u.Email
		}
		c = entity.Customer{UserID: u.ID, Name: name, Email: u.Email}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Customer{}).Where("id = ?", id).Updates(updates).Error
}
