package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
)

// fakeOrderStore is an in-memory orderStore for exercising the service
// without a running MongoDB.
type fakeOrderStore struct {
	orders map[string]models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]models.Order{}}
}

func (f *fakeOrderStore) put(o models.Order) string {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f.orders[o.ID.Hex()] = o
	return o.ID.Hex()
}

func (f *fakeOrderStore) All(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, mongo.ErrNoDocuments
	}
	return o, nil
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders[order.ID.Hex()] = *order
	return nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	o.Status = status
	now := time.Now()
	o.UpdatedAt = &now
	f.orders[id] = o
	return nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.orders, id)
	return nil
}

func testCartLines() []CartLine {
	return []CartLine{
		{ID: "p1", Name: "Cookie XL Chocolat", Price: 5.00, Quantity: 2, Kind: LineProduct},
		{ID: "p2", Name: "Crêpe Nature", Price: 3.50, Quantity: 1, Kind: LineProduct},
	}
}

// ─── Intake ───────────────────────────────────────────────────────────────────

func TestPlaceCreatesPendingOrder(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	order, err := svc.Place(context.Background(), Principal{UserID: "u1", Email: "jo@example.com"}, testCartLines(), "sans gluten", "2026-09-15")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, "jo@example.com", order.UserEmail)
	assert.InDelta(t, 13.50, order.Total, 0.001)
	assert.Equal(t, "2026-09-15", order.DeliveryDate)
	assert.False(t, order.IsPhoneOrder)
	assert.False(t, order.ID.IsZero())
	assert.Len(t, store.orders, 1)
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	_, err := svc.Place(context.Background(), Principal{UserID: "u1"}, nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, store.orders, "validation failure must not write")
}

func TestPlaceRejectsUnauthenticated(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	_, err := svc.Place(context.Background(), Principal{}, testCartLines(), "", "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, store.orders)
}

func TestPlaceRejectsBadDeliveryDate(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	_, err := svc.Place(context.Background(), Principal{UserID: "u1"}, testCartLines(), "", "15/09/2026")
	assert.ErrorIs(t, err, ErrBadDeliveryDate)
}

func TestPlaceFoldsCustomizationIntoName(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	lines := []CartLine{{ID: "c1", Name: "Gâteau Personnalisé", Price: 45, Quantity: 1, Kind: LineCustom, Customization: "thème pirate"}}
	order, err := svc.Place(context.Background(), Principal{UserID: "u1"}, lines, "", "")
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Gâteau Personnalisé (thème pirate)", order.Items[0].ProductName)
}

func TestPlacePhoneSynthesizesNotes(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	customer := PhoneCustomer{Name: "Marie Dupont", Phone: "06 12 34 56 78", Email: "marie@example.com"}
	order, err := svc.PlacePhone(context.Background(), customer, testCartLines(), "livraison le matin", "2026-09-20")
	require.NoError(t, err)

	assert.Equal(t, models.PhoneOrderUserID, order.UserID)
	assert.True(t, order.IsPhoneOrder)
	assert.Equal(t, "Client: Marie Dupont — Tél: 06 12 34 56 78\nlivraison le matin", order.Notes)
	assert.Equal(t, "marie@example.com", order.UserEmail)
}

func TestPlacePhoneWithoutNotes(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	order, err := svc.PlacePhone(context.Background(), PhoneCustomer{Name: "Marie", Phone: "0612345678"}, testCartLines(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Client: Marie — Tél: 0612345678", order.Notes)
}

func TestPlacePhoneRejectsEmptyLines(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	_, err := svc.PlacePhone(context.Background(), PhoneCustomer{Name: "Marie"}, nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

// ─── Listing ──────────────────────────────────────────────────────────────────

func seedOrders(store *fakeOrderStore) {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, status := range []string{models.StatusPending, models.StatusConfirmed, models.StatusPending} {
		store.put(models.Order{
			UserID:    "u1",
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
}

func TestListSortsMostRecentFirst(t *testing.T) {
	store := newFakeOrderStore()
	seedOrders(store)
	svc := &OrderService{orders: store}

	orders, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt), "orders must be sorted descending by creation time")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	store := newFakeOrderStore()
	seedOrders(store)
	svc := &OrderService{orders: store}

	pending, err := svc.List(context.Background(), models.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	_, err := svc.List(context.Background(), "shipped")
	assert.ErrorIs(t, err, ErrUnknownStatusValue)
}

func TestCounts(t *testing.T) {
	store := newFakeOrderStore()
	seedOrders(store)
	svc := &OrderService{orders: store}

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts[models.StatusPending])
	assert.Equal(t, 1, counts[models.StatusConfirmed])
}

// ─── Lifecycle ────────────────────────────────────────────────────────────────

func TestTransitionFullChain(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	order, err := svc.Place(context.Background(), Principal{UserID: "u1"}, testCartLines(), "", "")
	require.NoError(t, err)
	id := order.ID.Hex()

	for _, next := range []string{models.StatusConfirmed, models.StatusReady, models.StatusCompleted} {
		order, err = svc.Transition(context.Background(), id, next)
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, order.Status)
		require.NotNil(t, order.UpdatedAt)
	}

	stored, _ := store.FindByID(context.Background(), id)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestTransitionRejectsSkips(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{orders: store}

	order, err := svc.Place(context.Background(), Principal{UserID: "u1"}, testCartLines(), "", "")
	require.NoError(t, err)
	id := order.ID.Hex()

	// pending → ready skips confirmed.
	_, err = svc.Transition(context.Background(), id, models.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Regressions are not allowed either.
	_, err = svc.Transition(context.Background(), id, models.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, _ := store.FindByID(context.Background(), id)
	assert.Equal(t, models.StatusPending, stored.Status, "failed transition must not write")
}

func TestTransitionFromTerminal(t *testing.T) {
	store := newFakeOrderStore()
	id := store.put(models.Order{Status: models.StatusCompleted})
	svc := &OrderService{orders: store}

	_, err := svc.Transition(context.Background(), id, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownOrder(t *testing.T) {
	svc := &OrderService{orders: newFakeOrderStore()}

	_, err := svc.Transition(context.Background(), primitive.NewObjectID().Hex(), models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	store := newFakeOrderStore()
	id := store.put(models.Order{Status: models.StatusPending})
	svc := &OrderService{orders: store}

	require.NoError(t, svc.Remove(context.Background(), id))
	assert.ErrorIs(t, svc.Remove(context.Background(), id), ErrNotFound)
}
