package collection_test

import (
	"reflect"
	"testing"

	"github.com/joycybakery/fournil/pkg/collection"
)

type item struct {
	Name  string
	Kind  string
	Price float64
}

var items = []item{
	{"Baguette", "pain", 1.20},
	{"Croissant", "viennoiserie", 1.50},
	{"Cookie", "pâtisserie", 5.00},
	{"Pain complet", "pain", 2.10},
}

func TestMap(t *testing.T) {
	names := collection.Map(items, func(i item) string { return i.Name })
	want := []string{"Baguette", "Croissant", "Cookie", "Pain complet"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestFilter(t *testing.T) {
	pain := collection.Filter(items, func(i item) bool { return i.Kind == "pain" })
	if len(pain) != 2 {
		t.Fatalf("expected 2 pain items, got %d", len(pain))
	}
	if pain[0].Name != "Baguette" || pain[1].Name != "Pain complet" {
		t.Error("Filter must preserve source order")
	}
}

func TestFirstAndContains(t *testing.T) {
	got, ok := collection.First(items, func(i item) bool { return i.Price > 2 })
	if !ok || got.Name != "Cookie" {
		t.Errorf("expected Cookie, got %+v ok=%v", got, ok)
	}

	if _, ok := collection.First(items, func(i item) bool { return i.Price > 100 }); ok {
		t.Error("expected no match")
	}
	if !collection.Contains(items, func(i item) bool { return i.Kind == "viennoiserie" }) {
		t.Error("expected viennoiserie to be present")
	}
}

func TestCountBy(t *testing.T) {
	counts := collection.CountBy(items, func(i item) string { return i.Kind })
	if counts["pain"] != 2 || counts["viennoiserie"] != 1 || counts["pâtisserie"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestSortByIsStable(t *testing.T) {
	s := []item{
		{"b", "x", 1},
		{"a", "x", 1},
		{"c", "x", 0},
	}
	collection.SortBy(s, func(a, b item) bool { return a.Price < b.Price })

	// Equal prices keep their relative order: b before a.
	if s[0].Name != "c" || s[1].Name != "b" || s[2].Name != "a" {
		t.Errorf("unexpected order: %v", s)
	}
}

func TestSum(t *testing.T) {
	total := collection.Sum(items, func(i item) float64 { return i.Price })
	if total < 9.79 || total > 9.81 {
		t.Errorf("expected ~9.80, got %v", total)
	}
}

func TestKeyBy(t *testing.T) {
	byName := collection.KeyBy(items, func(i item) string { return i.Name })
	if byName["Cookie"].Price != 5.00 {
		t.Errorf("unexpected map: %v", byName)
	}
}
