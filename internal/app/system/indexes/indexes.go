// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}
	if err := ensureTeachers(ctx, db); err != nil {
		problems = append(problems, "teachers: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureAnnouncements covers the two list queries: the public active-window
// query (expiration_date range plus start_date sort) and the management
// list sorted by created_at.
func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("announcements")
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "expiration_date", Value: 1},
				{Key: "start_date", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("active_window"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
}

// ensureTeachers needs nothing beyond the _id lookup, which Mongo indexes
// implicitly. Kept as a hook so new teacher indexes land in one place.
func ensureTeachers(ctx context.Context, db *mongo.Database) error {
	return nil
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, indexModels []mongo.IndexModel) error {
	var errs []string

	for _, m := range indexModels {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		sig := keySig(m.Keys.(bson.D))

		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig))

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				// Same keys exist under another name; reuse them.
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("keys", sig))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
