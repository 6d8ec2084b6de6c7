package services

import (
	"errors"
	"time"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService struct {
	repo *repository.BookingRepository
}

func NewBookingService(repo *repository.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

type BookingIn struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	TableID       *uint  `json:"tableId"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	Time          string `json:"time" binding:"required,datetime=15:04"`
	Guests        int    `json:"guests" binding:"required,min=1"`
}

func (s *BookingService) Create(in *BookingIn) (*entity.Booking, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}

	if in.TableID != nil {
		if _, err := s.repo.FindTable(*in.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTableNotFound
			}
			return nil, err
		}
	}

	b := &entity.Booking{
		Reference:     uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		TableID:       in.TableID,
		Date:          date,
		Time:          in.Time,
		Guests:        in.Guests,
		Status:        entity.BookingPending,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) List() ([]entity.Booking, error) {
	return s.repo.List()
}

func (s *BookingService) UpdateStatus(id uint, status string) error {
	switch status {
	case entity.BookingPending, entity.BookingConfirmed, entity.BookingCancelled:
	default:
		return ErrInvalidStatus
	}
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *BookingService) Tables() ([]entity.Table, error) {
	return s.repo.ListTables()
}

type TableIn struct {
	TableNumber int `json:"tableNumber" binding:"required,min=1"`
	Capacity    int `json:"capacity" binding:"required,min=1"`
}

func (s *BookingService) CreateTable(in *TableIn) (*entity.Table, error) {
	t := &entity.Table{TableNumber: in.TableNumber, Capacity: in.Capacity}
	if err := s.repo.CreateTable(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *BookingService) DeleteTable(id uint) error {
	if _, err := s.repo.FindTable(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return err
	}
	return s.repo.DeleteTable(id)
}
