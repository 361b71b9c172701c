package models

import "gorm.io/gorm"

// Order statuses. "deleted" is a soft marker; deleted orders stay in the
// store and are only excluded from sales reporting.
const (
	StatusNew       = "new"
	StatusPreparing = "preparing"
	StatusCompleted = "completed"
	StatusDeleted   = "deleted"
)

// transitions maps each status to the statuses an order may move into.
var transitions = map[string][]string{
	StatusNew:       {StatusPreparing, StatusDeleted},
	StatusPreparing: {StatusCompleted, StatusDeleted},
	StatusCompleted: {},
	StatusDeleted:   {},
}

// CanTransition reports whether an order may move from one status to
// another. Unknown statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether the given status is part of the lifecycle.
func KnownStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

type Order struct {
	gorm.Model
	OrderType          string      `json:"orderType"`
	CustomerName       string      `json:"customerName"`
	RegistrationNumber string      `json:"registrationNumber"`
	Mobile             string      `json:"mobile"`
	TableNumber        string      `json:"tableNumber"`
	Address            string      `json:"address"`
	Total              float64     `json:"total"`
	Status             string      `json:"status"`
	GatewayOrderID     string      `json:"gatewayOrderId"`
	GatewayPaymentID   string      `json:"gatewayPaymentId"`
	Items              []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint    `json:"orderId"`
	Name    string  `json:"name" binding:"required"`
	Price   float64 `json:"price" binding:"gte=0"`
	Qty     int     `json:"qty" binding:"required,gte=1"`
}

// OrderPayload is the customer-facing order a client submits alongside a
// payment confirmation. It carries no total; the server always recomputes
// it from the items.
type OrderPayload struct {
	OrderType          string      `json:"orderType"`
	CustomerName       string      `json:"customerName"`
	RegistrationNumber string      `json:"registrationNumber"`
	Mobile             string      `json:"mobile"`
	TableNumber        string      `json:"tableNumber"`
	Address            string      `json:"address"`
	Items              []OrderItem `json:"items" binding:"required,min=1,dive"`
}

// DishTally is the top-selling-dish aggregation result. The field names
// mirror what the dashboard front end expects.
type DishTally struct {
	Name  string `json:"_id"`
	Count int    `json:"count"`
}
