package services

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddLineMergesByID(t *testing.T) {
	cart := &Cart{}

	cart.AddLine(CartLine{ID: "p1", Name: "Cookie XL Chocolat", Price: 5.00, Quantity: 1})
	cart.AddLine(CartLine{ID: "p1", Name: "Cookie XL Chocolat", Price: 5.00, Quantity: 1})

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartTotalAndCount(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ID: "p1", Name: "Cookie XL Chocolat", Price: 5.00, Quantity: 2})
	cart.AddLine(CartLine{ID: "p2", Name: "Crêpe Nature", Price: 3.50, Quantity: 1})

	assert.InDelta(t, 13.50, cart.Total(), 0.001)
	assert.Equal(t, 3, cart.Count())
}

func TestCartEmptyTotals(t *testing.T) {
	cart := &Cart{}
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())
	assert.Empty(t, cart.Lines())
}

func TestCartAddLineDefaults(t *testing.T) {
	cart := &Cart{}

	id := cart.AddLine(CartLine{Name: "Gâteau sur mesure", Price: 45.00})

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, LineProduct, lines[0].Kind)
	assert.True(t, strings.HasPrefix(id, "custom-"), "generated id should carry the custom- prefix, got %q", id)
}

func TestCartSetQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ID: "p1", Name: "Cookie", Price: 5.00, Quantity: 1})

	cart.SetQuantity("p1", 4)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 4, cart.Lines()[0].Quantity)

	// q ≤ 0 removes the line rather than storing a zero quantity.
	cart.SetQuantity("p1", 0)
	assert.Empty(t, cart.Lines())
}

func TestCartRemoveLineIdempotent(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ID: "p1", Name: "Cookie", Price: 5.00, Quantity: 1})

	cart.RemoveLine("p1")
	cart.RemoveLine("p1") // second removal is a no-op
	cart.RemoveLine("never-existed")

	assert.Empty(t, cart.Lines())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ID: "a", Name: "A", Price: 1, Quantity: 1})
	cart.AddLine(CartLine{ID: "b", Name: "B", Price: 1, Quantity: 1})
	cart.AddLine(CartLine{ID: "c", Name: "C", Price: 1, Quantity: 1})
	cart.AddLine(CartLine{ID: "a", Name: "A", Price: 1, Quantity: 1}) // merge must not reorder

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{lines[0].ID, lines[1].ID, lines[2].ID})
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ID: "p1", Name: "Cookie", Price: 5.00, Quantity: 3})

	cart.Clear()
	assert.Empty(t, cart.Lines())

	cart.Clear() // clearing an empty cart is fine
	assert.Zero(t, cart.Count())
}

func TestCartConcurrentAdds(t *testing.T) {
	cart := &Cart{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.AddLine(CartLine{ID: "p1", Name: "Cookie", Price: 5.00, Quantity: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, cart.Count())
	require.Len(t, cart.Lines(), 1)
}

func TestCartStoreIsolatesSessions(t *testing.T) {
	store := NewCartStore()

	a := store.For("session-a")
	b := store.For("session-b")
	a.AddLine(CartLine{ID: "p1", Name: "Cookie", Price: 5.00, Quantity: 1})

	assert.Equal(t, 1, a.Count())
	assert.Zero(t, b.Count())

	// Same session id returns the same cart.
	assert.Same(t, a, store.For("session-a"))

	store.Drop("session-a")
	assert.Zero(t, store.For("session-a").Count())
}
