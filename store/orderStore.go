package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/njorogedev/bistro-api/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// OrderStore persists orders in MySQL through gorm.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// listOrder returns the ORDER BY clause for listings. The id tie-break
// keeps orders created in the same second in a stable relative order.
func listOrder(desc bool) string {
	if desc {
		return "created_at DESC, id DESC"
	}
	return "created_at ASC, id ASC"
}

// ListBetween returns orders created in [from, to) with items preloaded.
// When desc is true, newest orders come first; otherwise orders come back
// in insertion order.
func (s *OrderStore) ListBetween(ctx context.Context, from, to time.Time, desc bool) ([]models.Order, error) {
	sort := listOrder(desc)

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order(sort).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}

// SalesBetween sums totals and counts orders created in [from, to),
// excluding soft-deleted orders.
func (s *OrderStore) SalesBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status <> ?", models.StatusDeleted).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}
