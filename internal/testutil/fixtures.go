package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/schoolhub/internal/app/store/announcement"
	"github.com/dalemusser/schoolhub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data through a Store,
// so the same helpers work against the Mongo and in-memory implementations.
type Fixtures struct {
	store announcement.Store
	t     *testing.T
}

// NewFixtures creates a Fixtures instance over the given store.
func NewFixtures(t *testing.T, store announcement.Store) *Fixtures {
	t.Helper()
	return &Fixtures{store: store, t: t}
}

// CreateAnnouncement creates an announcement with the given window.
// startDate may be "" for an announcement that is active immediately.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message, startDate, expirationDate string) models.Announcement {
	f.t.Helper()

	in := announcement.CreateInput{
		Message:        message,
		ExpirationDate: expirationDate,
		CreatedBy:      "fixture",
	}
	if startDate != "" {
		in.StartDate = &startDate
	}

	ann, err := f.store.Create(ctx, in)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	return *ann
}
