// internal/app/store/announcement/mongo.go
package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the MongoDB-backed Store over the announcements collection.
type MongoStore struct {
	c *mongo.Collection
}

// New creates a MongoStore over the given database.
func New(db *mongo.Database) *MongoStore {
	return &MongoStore{c: db.Collection("announcements")}
}

func (s *MongoStore) ListActive(ctx context.Context, today string) ([]models.Announcement, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"start_date": bson.M{"$exists": false}},
			bson.M{"start_date": nil},
			bson.M{"start_date": bson.M{"$lte": today}},
		},
		"expiration_date": bson.M{"$gte": today},
	}

	// Mongo sorts missing/null values lowest, so descending start_date
	// already places records without a start_date after dated ones.
	opts := options.Find().SetSort(bson.D{
		{Key: "start_date", Value: -1},
		{Key: "created_at", Value: -1},
	})

	return s.list(ctx, filter, opts)
}

func (s *MongoStore) ListAll(ctx context.Context) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.list(ctx, bson.M{}, opts)
}

func (s *MongoStore) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Announcement, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	anns := []models.Announcement{}
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var ann models.Announcement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ann)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ann, nil
}

func (s *MongoStore) Create(ctx context.Context, in CreateInput) (*models.Announcement, error) {
	ann := models.Announcement{
		ID:             primitive.NewObjectID(),
		Message:        in.Message,
		StartDate:      in.StartDate,
		ExpirationDate: in.ExpirationDate,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

func (s *MongoStore) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Announcement, error) {
	now := time.Now().UTC()
	set := bson.M{
		"message":         in.Message,
		"expiration_date": in.ExpirationDate,
		"updated_by":      in.UpdatedBy,
		"updated_at":      now,
	}

	update := bson.M{"$set": set}
	if in.StartDate != nil {
		if *in.StartDate == "" {
			update["$unset"] = bson.M{"start_date": 1}
		} else {
			set["start_date"] = *in.StartDate
		}
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
