package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
	"github.com/joycybakery/fournil/pkg/collection"
	"github.com/joycybakery/fournil/pkg/event"
	"github.com/joycybakery/fournil/pkg/metrics"
)

// Sentinel errors surfaced by the order service. Controllers map these onto
// the response envelope.
var (
	ErrEmptyCart          = errors.New("order: cart is empty")
	ErrNotAuthenticated   = errors.New("order: not authenticated")
	ErrInvalidTransition  = errors.New("order: transition not allowed")
	ErrNotFound           = errors.New("not found")
	ErrBadDeliveryDate    = errors.New("order: delivery date must be YYYY-MM-DD")
	ErrUnknownStatusValue = errors.New("order: unknown status")
)

// EventOrderStatusChanged is fired after a successful lifecycle transition.
const EventOrderStatusChanged = "order.status_changed"

// OrderStatusChanged is the payload of EventOrderStatusChanged.
type OrderStatusChanged struct {
	OrderID   string
	UserEmail string
	From      string
	To        string
}

// Principal is the authenticated identity placing a self-service order.
type Principal struct {
	UserID string
	Email  string
}

// PhoneCustomer is the staff-captured identity behind a phone order.
type PhoneCustomer struct {
	Name  string
	Phone string
	Email string
}

// orderStore is the slice of OrderRepository the service needs.
type orderStore interface {
	All(ctx context.Context) ([]models.Order, error)
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// OrderService covers order intake and the staff lifecycle.
type OrderService struct {
	orders orderStore
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository()}
}

// ─── Intake ───────────────────────────────────────────────────────────────────

// itemsFromLines converts cart lines into embedded order items, keeping
// insertion order. Customization text is folded into the captured name so
// the historical snapshot stays self-contained.
func itemsFromLines(lines []CartLine) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		if l.Customization != "" {
			name = fmt.Sprintf("%s (%s)", l.Name, l.Customization)
		}
		items = append(items, models.OrderItem{
			ProductID:   l.ID,
			ProductName: name,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}
	return items
}

func sumItems(items []models.OrderItem) float64 {
	return collection.Sum(items, func(i models.OrderItem) float64 { return i.Subtotal() })
}

func validDeliveryDate(d string) bool {
	if d == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", d)
	return err == nil
}

// Place converts a cart snapshot into a persisted pending order for an
// authenticated customer. No write occurs on validation or authorization
// failure. The caller clears the cart after success.
func (s *OrderService) Place(ctx context.Context, p Principal, lines []CartLine, notes, deliveryDate string) (models.Order, error) {
	if p.UserID == "" {
		return models.Order{}, ErrNotAuthenticated
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if !validDeliveryDate(deliveryDate) {
		return models.Order{}, ErrBadDeliveryDate
	}

	items := itemsFromLines(lines)
	order := models.Order{
		UserID:       p.UserID,
		UserEmail:    p.Email,
		Items:        items,
		Total:        sumItems(items),
		Status:       models.StatusPending,
		Notes:        notes,
		CreatedAt:    time.Now(),
		DeliveryDate: deliveryDate,
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.WithLabelValues("web").Inc()
	return order, nil
}

// PlacePhone converts a staff-assembled line list into a persisted pending
// order. The Order entity has no customer-identity fields beyond userId and
// userEmail, so the customer's name and phone are synthesized into the
// notes field.
func (s *OrderService) PlacePhone(ctx context.Context, customer PhoneCustomer, lines []CartLine, notes, deliveryDate string) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if !validDeliveryDate(deliveryDate) {
		return models.Order{}, ErrBadDeliveryDate
	}

	synthesized := fmt.Sprintf("Client: %s — Tél: %s", customer.Name, customer.Phone)
	if notes != "" {
		synthesized += "\n" + notes
	}

	items := itemsFromLines(lines)
	order := models.Order{
		UserID:       models.PhoneOrderUserID,
		UserEmail:    customer.Email,
		Items:        items,
		Total:        sumItems(items),
		Status:       models.StatusPending,
		Notes:        synthesized,
		CreatedAt:    time.Now(),
		DeliveryDate: deliveryDate,
		IsPhoneOrder: true,
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.WithLabelValues("phone").Inc()
	return order, nil
}

// ─── Listing ──────────────────────────────────────────────────────────────────

// List returns all orders, most recent first, optionally filtered by status.
// "all" (or empty) returns everything. Filtering happens here, over the
// full fetch, matching the admin view's behaviour.
func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	if status != "" && status != "all" && !validStatus(status) {
		return nil, ErrUnknownStatusValue
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	collection.SortBy(orders, func(a, b models.Order) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	if status == "" || status == "all" {
		return orders, nil
	}
	return collection.Filter(orders, func(o models.Order) bool {
		return o.Status == status
	}), nil
}

// Counts tallies orders per status, feeding the admin filter bar labels.
func (s *OrderService) Counts(ctx context.Context) (map[string]int, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	return collection.CountBy(orders, func(o models.Order) string { return o.Status }), nil
}

// ForUser returns one customer's own orders, most recent first.
func (s *OrderService) ForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ByUser(ctx, userID)
}

// Find returns a single order.
func (s *OrderService) Find(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

func validStatus(status string) bool {
	for _, v := range models.Statuses {
		if v == status {
			return true
		}
	}
	return false
}

// ─── Lifecycle ────────────────────────────────────────────────────────────────

// Transition advances an order to the next lifecycle status. Only the fixed
// sequence pending→confirmed→ready→completed is reachable; anything else
// fails with ErrInvalidTransition. The write itself carries no state
// precondition, so two staff sessions acting on the same stale read both
// succeed, last write wins.
func (s *OrderService) Transition(ctx context.Context, id, to string) (models.Order, error) {
	to = strings.TrimSpace(to)
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	next, ok := models.Transitions[order.Status]
	if !ok || next != to {
		return models.Order{}, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, order.Status, to)
	}

	if err := s.orders.UpdateStatus(ctx, id, to); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	metrics.OrderTransitions.WithLabelValues(order.Status, to).Inc()
	event.Fire(EventOrderStatusChanged, OrderStatusChanged{
		OrderID:   id,
		UserEmail: order.UserEmail,
		From:      order.Status,
		To:        to,
	})

	order.Status = to
	now := time.Now()
	order.UpdatedAt = &now
	return order, nil
}

// Remove deletes an order permanently. The confirmation step lives in the
// client; there is no audit record.
func (s *OrderService) Remove(ctx context.Context, id string) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
