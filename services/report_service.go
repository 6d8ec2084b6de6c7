package services

import (
	"time"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

type DashboardStats struct {
	TotalOrders  int64                   `json:"totalOrders"`
	TotalRevenue decimal.Decimal         `json:"totalRevenue"`
	TodayOrders  int64                   `json:"todayOrders"`
	RecentOrders []OrderSummary          `json:"recentOrders"`
	DailyCounts  []repository.DailyCount `json:"dailyCounts"`
}

// Dashboard aggregates completed orders for staff. Revenue is the exact
// decimal sum of each order's recomputed item total.
func (s *ReportService) Dashboard() (*DashboardStats, error) {
	total, err := s.repo.CompletedCount()
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.CompletedWithItems()
	if err != nil {
		return nil, err
	}
	revenue := decimal.NewFromInt(0)
	for _, o := range completed {
		revenue = revenue.Add(summarize(&o).Total)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.CompletedSince(midnight)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentCompleted(5)
	if err != nil {
		return nil, err
	}
	recentSummaries := make([]OrderSummary, 0, len(recent))
	for _, o := range recent {
		recentSummaries = append(recentSummaries, summarize(&o))
	}

	daily, err := s.repo.DailyCompletedCounts(midnight.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:  total,
		TotalRevenue: revenue,
		TodayOrders:  today,
		RecentOrders: recentSummaries,
		DailyCounts:  daily,
	}, nil
}
