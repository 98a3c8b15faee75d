// internal/app/store/announcement/memory.go
package announcement

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by handler tests. It implements
// the same filtering and ordering rules as MongoStore, including the
// missing-start_date-sorts-last placement.
type MemoryStore struct {
	mu   sync.RWMutex
	anns map[primitive.ObjectID]models.Announcement
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{anns: make(map[primitive.ObjectID]models.Announcement)}
}

func (s *MemoryStore) ListActive(ctx context.Context, today string) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := []models.Announcement{}
	for _, ann := range s.anns {
		if ann.StartDate != nil && *ann.StartDate > today {
			continue
		}
		if ann.ExpirationDate < today {
			continue
		}
		active = append(active, ann)
	}

	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		switch {
		case a.StartDate != nil && b.StartDate != nil:
			if *a.StartDate != *b.StartDate {
				return *a.StartDate > *b.StartDate
			}
		case a.StartDate != nil:
			return true
		case b.StartDate != nil:
			return false
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.Hex() > b.ID.Hex()
	})
	return active, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := []models.Announcement{}
	for _, ann := range s.anns {
		all = append(all, ann)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})
	return all, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ann, ok := s.anns[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ann, nil
}

func (s *MemoryStore) Create(ctx context.Context, in CreateInput) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ann := models.Announcement{
		ID:             primitive.NewObjectID(),
		Message:        in.Message,
		StartDate:      in.StartDate,
		ExpirationDate: in.ExpirationDate,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now().UTC(),
	}
	s.anns[ann.ID] = ann
	return &ann, nil
}

func (s *MemoryStore) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ann, ok := s.anns[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	ann.Message = in.Message
	ann.ExpirationDate = in.ExpirationDate
	ann.UpdatedBy = &in.UpdatedBy
	ann.UpdatedAt = &now
	if in.StartDate != nil {
		if *in.StartDate == "" {
			ann.StartDate = nil
		} else {
			sd := *in.StartDate
			ann.StartDate = &sd
		}
	}

	s.anns[id] = ann
	return &ann, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.anns[id]; !ok {
		return ErrNotFound
	}
	delete(s.anns, id)
	return nil
}
