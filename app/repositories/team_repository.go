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

// TeamRepository handles storage operations for TeamMember.
type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{coll: database.Collection("teamMembers")}
}

// All returns every team member, oldest first.
func (r *TeamRepository) All(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Create persists a new team member and fills in its generated id.
func (r *TeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	member.CreatedAt = time.Now()
	if member.Schedule == nil {
		member.Schedule = []models.ScheduleSlot{}
	}
	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return nil
}

// Delete removes a team member permanently.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
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
