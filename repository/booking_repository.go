package repository

import (
	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/gorm"
)

type BookingRepository struct{ DB *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{DB: db} }

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("date DESC, time DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Booking{}).Where("id = ?", id).Update("status", status).Error
}

func (r *BookingRepository) ListTables() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *BookingRepository) FindTable(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *BookingRepository) CreateTable(t *entity.Table) error {
	return r.DB.Create(t).Error
}

// DeleteTable detaches the table from its bookings before removing it.
func (r *BookingRepository) DeleteTable(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Booking{}).Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Table{}, id).Error
	})
}
