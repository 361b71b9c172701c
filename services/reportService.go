package services

import (
	"context"
	"time"

	"github.com/njorogedev/bistro-api/models"
)

// SalesSummary is the dashboard sales aggregate for a reporting window.
type SalesSummary struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// ReportService answers the dashboard queries over persisted orders.
type ReportService struct {
	orders OrderStore
}

func NewReportService(orders OrderStore) *ReportService {
	return &ReportService{orders: orders}
}

// reportWindow returns the [from, to) window for a reporting period
// starting at date. Months use calendar arithmetic, not a fixed 30 days.
func reportWindow(period string, date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	switch period {
	case "week":
		return from, from.AddDate(0, 0, 7)
	case "month":
		return from, from.AddDate(0, 1, 0)
	default: // "day" or unset
		return from, from.AddDate(0, 0, 1)
	}
}

// Sales sums totals and counts orders in the period window, excluding
// soft-deleted orders.
func (s *ReportService) Sales(ctx context.Context, period string, date time.Time) (SalesSummary, error) {
	from, to := reportWindow(period, date)
	total, count, err := s.orders.SalesBetween(ctx, from, to)
	if err != nil {
		return SalesSummary{}, err
	}
	return SalesSummary{Total: total, Count: count}, nil
}

// TopDish tallies quantities per dish name over every order created on the
// given date, regardless of status, and returns the best seller. Ties go
// to the dish seen first. Returns nil when the day has no orders.
func (s *ReportService) TopDish(ctx context.Context, date time.Time) (*models.DishTally, error) {
	from, to := reportWindow("day", date)
	orders, err := s.orders.ListBetween(ctx, from, to, false)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var names []string
	for _, order := range orders {
		for _, item := range order.Items {
			if _, seen := counts[item.Name]; !seen {
				names = append(names, item.Name)
			}
			counts[item.Name] += item.Qty
		}
	}

	// Among dishes tied at the maximum, the one seen first wins.
	var top *models.DishTally
	for _, name := range names {
		if top == nil || counts[name] > top.Count {
			top = &models.DishTally{Name: name, Count: counts[name]}
		}
	}

	return top, nil
}
