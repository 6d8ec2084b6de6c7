package repository

import (
	"time"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CompletedCount() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Order{}).Where("complete = ?", true).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CompletedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Order{}).
		Where("complete = ? AND created_at >= ?", true, t).
		Count(&count).Error
	return count, err
}

// CompletedWithItems loads every completed order with its lines so
// revenue can be recomputed from line items rather than a cached total.
func (r *ReportRepository) CompletedWithItems() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("complete = ?", true).
		Preload("Items").
		Preload("Items.Product").
		Find(&orders).Error
	return orders, err
}

func (r *ReportRepository) RecentCompleted(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("complete = ?", true).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

type DailyCount struct {
	Day   string `json:"date"`
	Count int64  `json:"count"`
}

// DailyCompletedCounts groups completed orders by creation date. Days
// without orders are absent from the result.
func (r *ReportRepository) DailyCompletedCounts(since time.Time) ([]DailyCount, error) {
	var rows []DailyCount
	err := r.db.Model(&entity.Order{}).
		Select("DATE(created_at) AS day, COUNT(id) AS count").
		Where("complete = ? AND created_at >= ?", true, since).
		Group("DATE(created_at)").
		Order("day").
		Scan(&rows).Error
	return rows, err
}
