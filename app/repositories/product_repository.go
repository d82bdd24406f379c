// Package repositories holds the MongoDB data access layer.
//
// Every repository works against the shared client in pkg/database and keeps
// the same shape: full-collection fetches, single-document writes, no
// server-side aggregation — filtering and sorting happen in the services.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/pkg/database"
)

// ProductRepository handles storage operations for Product.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{coll: database.Collection("products")}
}

// All returns every product.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID looks up a product by its hex id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, mongo.ErrNoDocuments
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	return product, err
}

// Create persists a new product and fills in its generated id.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// Update replaces the mutable fields of an existing product.
func (r *ProductRepository) Update(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a product permanently.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
