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

// VacationRepository handles storage operations for Vacation.
type VacationRepository struct {
	coll *mongo.Collection
}

func NewVacationRepository() *VacationRepository {
	return &VacationRepository{coll: database.Collection("vacations")}
}

// All returns every vacation, earliest start date first.
func (r *VacationRepository) All(ctx context.Context) ([]models.Vacation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var vacations []models.Vacation
	if err := cur.All(ctx, &vacations); err != nil {
		return nil, err
	}
	return vacations, nil
}

// Create persists a new vacation and fills in its generated id.
func (r *VacationRepository) Create(ctx context.Context, vacation *models.Vacation) error {
	vacation.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, vacation)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		vacation.ID = oid
	}
	return nil
}

// Delete removes a vacation permanently. Vacations are immutable, so
// delete-and-recreate is the only way to "edit" one.
func (r *VacationRepository) Delete(ctx context.Context, id string) error {
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
