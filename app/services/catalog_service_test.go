package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
)

type fakeProductStore struct {
	products map[string]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]models.Product{}}
}

func (f *fakeProductStore) put(p models.Product) string {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakeProductStore) All(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeProductStore) Create(ctx context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, id string, fields bson.M) error {
	p, ok := f.products[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := fields["category"]; ok {
		p.Category = v.(string)
	}
	if v, ok := fields["imageUrl"]; ok {
		p.ImageURL = v.(string)
	}
	if v, ok := fields["available"]; ok {
		p.Available = v.(bool)
	}
	f.products[id] = p
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.products, id)
	return nil
}

func seedProducts(store *fakeProductStore) {
	store.put(models.Product{Name: "Baguette", Category: models.CategoryPain, Price: 1.20, Available: true})
	store.put(models.Product{Name: "Croissant", Category: models.CategoryViennoiserie, Price: 1.50, Available: true})
	store.put(models.Product{Name: "Gâteau Personnalisé", Category: models.CategoryGateau, Price: 45.00, Available: false})
}

func TestCatalogListAll(t *testing.T) {
	store := newFakeProductStore()
	seedProducts(store)
	svc := &CatalogService{products: store}

	for _, category := range []string{"", "all"} {
		products, err := svc.List(context.Background(), category, false)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	}
}

func TestCatalogListFilters(t *testing.T) {
	store := newFakeProductStore()
	seedProducts(store)
	svc := &CatalogService{products: store}

	pain, err := svc.List(context.Background(), models.CategoryPain, false)
	require.NoError(t, err)
	require.Len(t, pain, 1)
	assert.Equal(t, "Baguette", pain[0].Name)

	available, err := svc.List(context.Background(), "", true)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	// Accented category values are first-class.
	gateaux, err := svc.List(context.Background(), models.CategoryGateau, true)
	require.NoError(t, err)
	assert.Empty(t, gateaux, "the only gâteau is unavailable")
}

func TestCatalogListRejectsUnknownCategory(t *testing.T) {
	svc := &CatalogService{products: newFakeProductStore()}

	_, err := svc.List(context.Background(), "boissons", false)
	assert.ErrorIs(t, err, ErrBadCategory)
}

func TestCatalogCreate(t *testing.T) {
	store := newFakeProductStore()
	svc := &CatalogService{products: store}

	p, err := svc.Create(context.Background(), ProductInput{
		Name:     "Pain au levain",
		Price:    4.50,
		Category: models.CategoryPain,
	})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
	assert.Len(t, store.products, 1)

	_, err = svc.Create(context.Background(), ProductInput{Name: "X", Category: "inconnu"})
	assert.ErrorIs(t, err, ErrBadCategory)
}

func TestCatalogUpdate(t *testing.T) {
	store := newFakeProductStore()
	id := store.put(models.Product{Name: "Baguette", Category: models.CategoryPain, Price: 1.20, Available: true})
	svc := &CatalogService{products: store}

	updated, err := svc.Update(context.Background(), id, ProductInput{
		Name:      "Baguette Tradition",
		Price:     1.40,
		Category:  models.CategoryPain,
		Available: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Baguette Tradition", updated.Name)
	assert.InDelta(t, 1.40, updated.Price, 0.001)
}

func TestCatalogFindAndRemove(t *testing.T) {
	store := newFakeProductStore()
	id := store.put(models.Product{Name: "Baguette", Category: models.CategoryPain})
	svc := &CatalogService{products: store}

	_, err := svc.Find(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Remove(context.Background(), id))
	assert.ErrorIs(t, svc.Remove(context.Background(), id), ErrNotFound)
}
