// internal/app/store/teachers/teacherstore.go
package teacherstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the lookup interface for teacher accounts. The only check the
// rest of the application performs is existence of a username; Ensure is
// used by startup to seed the bootstrap account.
type Store interface {
	// Exists reports whether a teacher with the given username is on record.
	Exists(ctx context.Context, username string) (bool, error)

	// Ensure creates the teacher if no record with its username exists.
	// Existing records are left untouched, so reseeding is idempotent.
	Ensure(ctx context.Context, t models.Teacher) error
}

// MongoStore is the MongoDB-backed Store over the teachers collection.
type MongoStore struct {
	c *mongo.Collection
}

// New creates a MongoStore over the given database.
func New(db *mongo.Database) *MongoStore {
	return &MongoStore{c: db.Collection("teachers")}
}

func (s *MongoStore) Exists(ctx context.Context, username string) (bool, error) {
	proj := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.c.FindOne(ctx, bson.M{"_id": username}, proj).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MongoStore) Ensure(ctx context.Context, t models.Teacher) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	update := bson.M{"$setOnInsert": bson.M{
		"display_name": t.DisplayName,
		"created_at":   t.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, t.Username, update, opts)
	return err
}

// MemoryStore is an in-process Store used by handler tests.
type MemoryStore struct {
	teachers map[string]models.Teacher
}

// NewMemory creates a MemoryStore seeded with the given usernames.
func NewMemory(usernames ...string) *MemoryStore {
	s := &MemoryStore{teachers: make(map[string]models.Teacher)}
	for _, u := range usernames {
		s.teachers[u] = models.Teacher{Username: u, CreatedAt: time.Now().UTC()}
	}
	return s
}

func (s *MemoryStore) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := s.teachers[username]
	return ok, nil
}

func (s *MemoryStore) Ensure(ctx context.Context, t models.Teacher) error {
	if _, ok := s.teachers[t.Username]; ok {
		return nil
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.teachers[t.Username] = t
	return nil
}
