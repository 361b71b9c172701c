package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/njorogedev/bistro-api/broadcast"
	"github.com/njorogedev/bistro-api/models"
	"github.com/njorogedev/bistro-api/payments"
	"github.com/njorogedev/bistro-api/store"
)

// OrderService owns the order lifecycle: creating remote payment orders,
// verifying payment confirmations, persisting orders and pushing events to
// staff displays.
type OrderService struct {
	orders   OrderStore
	gateway  Gateway
	notifier Notifier
}

func NewOrderService(orders OrderStore, gateway Gateway, notifier Notifier) *OrderService {
	return &OrderService{orders: orders, gateway: gateway, notifier: notifier}
}

// CreatePaymentOrder creates a remote payment order for the given amount.
func (s *OrderService) CreatePaymentOrder(ctx context.Context, amount float64) (payments.GatewayOrder, error) {
	return s.gateway.CreateOrder(ctx, amount)
}

// VerifyAndCreateOrder checks the payment signature and, on a match,
// persists the order with a server-computed total and broadcasts a
// newOrder event. A signature mismatch returns ErrSignatureMismatch and
// persists nothing.
//
// There is deliberately no dedup on the gateway order id: two calls with
// the same valid confirmation create two orders. The original system has
// the same gap and it is preserved here until product decides otherwise.
func (s *OrderService) VerifyAndCreateOrder(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string, payload models.OrderPayload) (*models.Order, error) {
	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		return nil, ErrSignatureMismatch
	}

	if len(payload.Items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	for _, item := range payload.Items {
		total += item.Price * float64(item.Qty)
	}

	order := models.Order{
		OrderType:          payload.OrderType,
		CustomerName:       payload.CustomerName,
		RegistrationNumber: payload.RegistrationNumber,
		Mobile:             payload.Mobile,
		TableNumber:        payload.TableNumber,
		Address:            payload.Address,
		Items:              payload.Items,
		Total:              total,
		Status:             models.StatusNew,
		GatewayOrderID:     gatewayOrderID,
		GatewayPaymentID:   gatewayPaymentID,
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.broadcast(ctx, broadcast.EventNewOrder, order)

	return &order, nil
}

// ListOrders returns the orders created on the given local date, newest
// first.
func (s *OrderService) ListOrders(ctx context.Context, date time.Time) ([]models.Order, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return s.orders.ListBetween(ctx, from, from.AddDate(0, 0, 1), true)
}

// UpdateStatus moves an order along its lifecycle and broadcasts the
// updated order. Unknown ids return ErrOrderNotFound; moves outside the
// transition graph return ErrBadTransition.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !models.KnownStatus(status) || !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, order.Status, status)
	}

	order.Status = status
	if err := s.orders.Save(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.broadcast(ctx, broadcast.EventOrderUpdated, order)

	return &order, nil
}

// broadcast is best-effort; a display that misses an event must not fail
// the customer's request.
func (s *OrderService) broadcast(ctx context.Context, event string, order models.Order) {
	if err := s.notifier.Broadcast(ctx, event, order); err != nil {
		log.Printf("Failed to broadcast %s event for order %d: %v", event, order.ID, err)
	}
}
