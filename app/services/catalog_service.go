package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
	"github.com/joycybakery/fournil/pkg/collection"
	"github.com/joycybakery/fournil/pkg/storage"
)

// Catalog sentinel errors.
var (
	ErrBadCategory  = errors.New("catalog: unknown category")
	ErrBadImageType = errors.New("catalog: image must be jpeg, png or webp")
)

// ProductInput is the staff-facing payload for creating or updating a
// product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable,max=2000"`
	Price       float64 `json:"price" validate:"numeric,gte=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"nullable"`
	Available   bool    `json:"available"`
}

type productStore interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

// CatalogService covers the product catalogue: storefront reads with
// category/availability filtering, staff CRUD, and image upload.
type CatalogService struct {
	products productStore
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// List returns products, optionally filtered by category and/or
// availability. Both filters are applied here over the full fetch.
func (s *CatalogService) List(ctx context.Context, category string, availableOnly bool) ([]models.Product, error) {
	if category != "" && category != "all" && !models.ValidCategory(category) {
		return nil, ErrBadCategory
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" && category != "all" {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Category == category
		})
	}
	if availableOnly {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Available
		})
	}
	return products, nil
}

// Find returns a single product.
func (s *CatalogService) Find(ctx context.Context, id string) (models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Create validates and persists a new product.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	if !models.ValidCategory(in.Category) {
		return models.Product{}, ErrBadCategory
	}

	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   in.Available,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update replaces a product's mutable fields.
func (s *CatalogService) Update(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	if !models.ValidCategory(in.Category) {
		return models.Product{}, ErrBadCategory
	}

	err := s.products.Update(ctx, id, bson.M{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"category":    in.Category,
		"imageUrl":    in.ImageURL,
		"available":   in.Available,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return s.Find(ctx, id)
}

// Remove deletes a product permanently.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// ─── Images ───────────────────────────────────────────────────────────────────

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// AttachImage stores an uploaded product photo on the configured disk and
// points the product's imageUrl at it.
func (s *CatalogService) AttachImage(ctx context.Context, id, contentType string, data []byte) (models.Product, error) {
	product, err := s.Find(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return models.Product{}, ErrBadImageType
	}

	key := path.Join("products", fmt.Sprintf("%s-%d%s", id, time.Now().Unix(), ext))
	if err := storage.Put(key, data); err != nil {
		return models.Product{}, err
	}

	url := storage.URL(key)
	if err := s.products.Update(ctx, id, bson.M{"imageUrl": url}); err != nil {
		return models.Product{}, err
	}
	product.ImageURL = url
	return product, nil
}
