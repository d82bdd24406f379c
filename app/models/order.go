package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order moves pending → confirmed → ready → completed;
// cancelled exists in the taxonomy and colour map but no staff action
// currently drives an order into it.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists every status, in lifecycle order.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

// Transitions is the staff-exposed state machine: each status maps to the
// single status it may advance to. Terminal states (completed, cancelled)
// have no entry, so skips are not expressible.
var Transitions = map[string]string{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusReady,
	StatusReady:     StatusCompleted,
}

// StatusColors maps each status to its admin display colour.
var StatusColors = map[string]string{
	StatusPending:   "#f59e0b",
	StatusConfirmed: "#3b82f6",
	StatusReady:     "#8b5cf6",
	StatusCompleted: "#10b981",
	StatusCancelled: "#ef4444",
}

// PhoneOrderUserID is the userId sentinel for staff-entered phone orders,
// which have no authenticated principal.
const PhoneOrderUserID = "phone-order"

// OrderItem is a line embedded in an Order. Name and price are captured at
// order time and never re-joined against the live catalogue.
type OrderItem struct {
	ProductID   string  `bson:"productId" json:"productId"`
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

// Subtotal returns price × quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is a placed order. Items keep their insertion order; total is
// computed once at intake and never recomputed on mutation.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	DeliveryDate string             `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"` // pure calendar date, "YYYY-MM-DD"
	IsPhoneOrder bool               `bson:"isPhoneOrder,omitempty" json:"isPhoneOrder,omitempty"`
}

// Terminal reports whether status admits no further transition.
func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
