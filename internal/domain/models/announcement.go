// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a dated notice shown to students while its activation
// window covers the current date.
//
// StartDate and ExpirationDate are calendar dates stored as ISO strings
// (YYYY-MM-DD) so lexicographic comparison in queries equals chronological
// comparison. StartDate is absent when the announcement is active
// immediately; UpdatedBy/UpdatedAt are absent until the first update.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id"`
	Message        string             `bson:"message"`
	StartDate      *string            `bson:"start_date,omitempty"`
	ExpirationDate string             `bson:"expiration_date"`
	CreatedBy      string             `bson:"created_by"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedBy      *string            `bson:"updated_by,omitempty"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty"`
}
