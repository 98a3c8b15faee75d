// internal/app/store/announcement/store.go
package announcement

import (
	"context"
	"errors"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no announcement matches the given id.
var ErrNotFound = errors.New("announcement not found")

// Store is the persistence interface for announcements. Handlers depend on
// this interface only; New returns the MongoDB implementation and NewMemory
// an in-process one used by tests.
type Store interface {
	// ListActive returns announcements whose activation window covers today
	// (an ISO YYYY-MM-DD date). A record is active when its start_date is
	// absent or <= today and its expiration_date is >= today. Results are
	// ordered by start_date descending then created_at descending, with
	// records lacking a start_date sorted after all records that have one.
	ListActive(ctx context.Context, today string) ([]models.Announcement, error)

	// ListAll returns every announcement ordered by created_at descending.
	ListAll(ctx context.Context) ([]models.Announcement, error)

	// GetByID returns the announcement with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)

	// Create inserts a new announcement and returns it with its generated id.
	Create(ctx context.Context, in CreateInput) (*models.Announcement, error)

	// Update applies in to the announcement with the given id and returns
	// the record as re-read after the write, or ErrNotFound if no record
	// matched.
	Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Announcement, error)

	// Delete removes the announcement with the given id, or returns
	// ErrNotFound if no record matched.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CreateInput holds the fields for a new announcement. StartDate is nil when
// the announcement should be active immediately.
type CreateInput struct {
	Message        string
	StartDate      *string
	ExpirationDate string
	CreatedBy      string
}

// UpdateInput holds the fields applied by Update. Message, ExpirationDate,
// and UpdatedBy are always written. StartDate is three-state: nil leaves the
// stored value untouched, a pointer to "" removes the field, and any other
// value replaces it.
type UpdateInput struct {
	Message        string
	ExpirationDate string
	UpdatedBy      string
	StartDate      *string
}
