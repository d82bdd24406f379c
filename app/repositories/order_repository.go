package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/pkg/database"
)

// OrderRepository handles storage operations for Order.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{coll: database.Collection("orders")}
}

// All returns every order, most recent first. Equal timestamps keep the
// order the store returned them in ($natural is not re-sorted client-side).
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ByUser returns the given user's orders, most recent first.
func (r *OrderRepository) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID looks up an order by its hex id.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, mongo.ErrNoDocuments
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	return order, err
}

// Create persists a new order and fills in its generated id.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

// UpdateStatus writes the new status and stamps updatedAt. The filter
// carries no state precondition: concurrent staff actions are
// last-write-wins.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an order permanently. No audit record is kept.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
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
