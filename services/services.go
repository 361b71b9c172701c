// Package services holds the core business logic. Each service depends on
// narrow interfaces so tests can run against fakes instead of a live
// database, gateway, or broker.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/njorogedev/bistro-api/models"
	"github.com/njorogedev/bistro-api/payments"
)

var (
	// ErrSignatureMismatch is the normal negative outcome of payment
	// verification, not a server failure.
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// ErrNoItems is returned when an order payload carries no usable items;
	// a total must never silently compute to zero.
	ErrNoItems = errors.New("order has no items")

	// ErrOrderNotFound is returned for status updates against unknown orders.
	ErrOrderNotFound = errors.New("order not found")

	// ErrBadTransition is returned when a status update falls outside the
	// order lifecycle.
	ErrBadTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is the normal negative outcome of a manager
	// login or credential change.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OrderStore is the persistence surface the order and reporting services
// need.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	ListBetween(ctx context.Context, from, to time.Time, desc bool) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	SalesBetween(ctx context.Context, from, to time.Time) (float64, int64, error)
}

// ManagerStore is the persistence surface for manager accounts.
type ManagerStore interface {
	FindByCredentials(ctx context.Context, username, password string) (models.Manager, error)
	Save(ctx context.Context, manager *models.Manager) error
}

// MenuStore records menu publish revisions.
type MenuStore interface {
	SaveRevision(ctx context.Context, payload []byte) error
}

// Gateway is the payment gateway surface the order service needs.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64) (payments.GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

// Notifier pushes order events to all currently connected staff displays.
type Notifier interface {
	Broadcast(ctx context.Context, event string, payload any) error
}
