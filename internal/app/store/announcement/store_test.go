package announcement_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/app/store/announcement"
	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"github.com/dalemusser/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// backends returns each Store implementation under its own name. The Mongo
// suite is skipped automatically when no test server is reachable; the
// memory suite always runs. Running both asserts they share filtering and
// ordering semantics.
func backends(t *testing.T) map[string]func(t *testing.T) announcement.Store {
	return map[string]func(t *testing.T) announcement.Store{
		"memory": func(t *testing.T) announcement.Store {
			return announcement.NewMemory()
		},
		"mongo": func(t *testing.T) announcement.Store {
			return announcement.New(testutil.SetupTestDB(t))
		},
	}
}

func daysFromNow(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format(dates.Layout)
}

func create(t *testing.T, ctx context.Context, s announcement.Store, message, startDate, expirationDate string) {
	t.Helper()
	in := announcement.CreateInput{
		Message:        message,
		ExpirationDate: expirationDate,
		CreatedBy:      "t1",
	}
	if startDate != "" {
		in.StartDate = &startDate
	}
	if _, err := s.Create(ctx, in); err != nil {
		t.Fatalf("create %q failed: %v", message, err)
	}
	// Spread created_at so creation-order assertions cannot tie.
	time.Sleep(2 * time.Millisecond)
}

func TestListActive(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			create(t, ctx, s, "no start", "", daysFromNow(3))
			create(t, ctx, s, "old start", daysFromNow(-10), daysFromNow(3))
			create(t, ctx, s, "recent start", daysFromNow(-1), daysFromNow(3))
			create(t, ctx, s, "future start", daysFromNow(1), daysFromNow(3))
			create(t, ctx, s, "expired", daysFromNow(-10), daysFromNow(-1))

			got, err := s.ListActive(ctx, dates.Today())
			if err != nil {
				t.Fatalf("ListActive failed: %v", err)
			}

			// start_date desc with missing-start last.
			want := []string{"recent start", "old start", "no start"}
			if len(got) != len(want) {
				t.Fatalf("count: got %d, want %d", len(got), len(want))
			}
			for i, msg := range want {
				if got[i].Message != msg {
					t.Errorf("position %d: got %q, want %q", i, got[i].Message, msg)
				}
			}
		})
	}
}

func TestListActive_SecondaryOrderIsCreatedAtDesc(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			start := daysFromNow(-1)
			create(t, ctx, s, "first created", start, daysFromNow(3))
			create(t, ctx, s, "second created", start, daysFromNow(3))

			got, err := s.ListActive(ctx, dates.Today())
			if err != nil {
				t.Fatalf("ListActive failed: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("count: got %d, want 2", len(got))
			}
			if got[0].Message != "second created" {
				t.Errorf("newest-first tie break: got %q first", got[0].Message)
			}
		})
	}
}

func TestListAll_OrderedByCreatedAtDesc(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			create(t, ctx, s, "a", daysFromNow(-5), daysFromNow(-1))
			create(t, ctx, s, "b", "", daysFromNow(3))
			create(t, ctx, s, "c", daysFromNow(1), daysFromNow(3))

			got, err := s.ListAll(ctx)
			if err != nil {
				t.Fatalf("ListAll failed: %v", err)
			}
			want := []string{"c", "b", "a"}
			if len(got) != len(want) {
				t.Fatalf("count: got %d, want %d", len(got), len(want))
			}
			for i, msg := range want {
				if got[i].Message != msg {
					t.Errorf("position %d: got %q, want %q", i, got[i].Message, msg)
				}
			}
		})
	}
}

func TestCreateAndGetByID(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			start := daysFromNow(1)
			ann, err := s.Create(ctx, announcement.CreateInput{
				Message:        "hello",
				StartDate:      &start,
				ExpirationDate: daysFromNow(3),
				CreatedBy:      "t1",
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if ann.ID.IsZero() {
				t.Fatal("Create returned zero id")
			}
			if ann.UpdatedBy != nil || ann.UpdatedAt != nil {
				t.Error("new record has update audit fields")
			}

			got, err := s.GetByID(ctx, ann.ID)
			if err != nil {
				t.Fatalf("GetByID failed: %v", err)
			}
			if got.Message != "hello" || got.CreatedBy != "t1" {
				t.Errorf("read back mismatch: %+v", got)
			}
			if got.StartDate == nil || *got.StartDate != start {
				t.Errorf("start_date: got %v, want %q", got.StartDate, start)
			}
		})
	}
}

func TestUpdate_StartDatePolicy(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			start := daysFromNow(-1)
			exp := daysFromNow(3)
			seed := func() primitive.ObjectID {
				t.Helper()
				ann, err := s.Create(ctx, announcement.CreateInput{
					Message:        "m",
					StartDate:      &start,
					ExpirationDate: exp,
					CreatedBy:      "t1",
				})
				if err != nil {
					t.Fatalf("Create failed: %v", err)
				}
				return ann.ID
			}

			t.Run("nil leaves untouched", func(t *testing.T) {
				id := seed()
				got, err := s.Update(ctx, id, announcement.UpdateInput{
					Message: "m2", ExpirationDate: exp, UpdatedBy: "t1",
				})
				if err != nil {
					t.Fatalf("Update failed: %v", err)
				}
				if got.StartDate == nil || *got.StartDate != start {
					t.Errorf("start_date: got %v, want %q", got.StartDate, start)
				}
				if got.Message != "m2" {
					t.Errorf("message not updated: %q", got.Message)
				}
				if got.UpdatedBy == nil || *got.UpdatedBy != "t1" || got.UpdatedAt == nil {
					t.Error("update audit fields missing")
				}
			})

			t.Run("empty string removes the field", func(t *testing.T) {
				id := seed()
				empty := ""
				got, err := s.Update(ctx, id, announcement.UpdateInput{
					Message: "m", ExpirationDate: exp, UpdatedBy: "t1", StartDate: &empty,
				})
				if err != nil {
					t.Fatalf("Update failed: %v", err)
				}
				if got.StartDate != nil {
					t.Errorf("start_date still set: %q", *got.StartDate)
				}
			})

			t.Run("value replaces", func(t *testing.T) {
				id := seed()
				newStart := daysFromNow(2)
				got, err := s.Update(ctx, id, announcement.UpdateInput{
					Message: "m", ExpirationDate: exp, UpdatedBy: "t1", StartDate: &newStart,
				})
				if err != nil {
					t.Fatalf("Update failed: %v", err)
				}
				if got.StartDate == nil || *got.StartDate != newStart {
					t.Errorf("start_date: got %v, want %q", got.StartDate, newStart)
				}
			})
		})
	}
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			missing := primitive.NewObjectID()
			if _, err := s.Update(ctx, missing, announcement.UpdateInput{
				Message: "m", ExpirationDate: daysFromNow(1), UpdatedBy: "t1",
			}); err != announcement.ErrNotFound {
				t.Errorf("Update: got %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, missing); err != announcement.ErrNotFound {
				t.Errorf("Delete: got %v, want ErrNotFound", err)
			}
			if _, err := s.GetByID(ctx, missing); err != announcement.ErrNotFound {
				t.Errorf("GetByID: got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			keep, err := s.Create(ctx, announcement.CreateInput{
				Message: "keep", ExpirationDate: daysFromNow(1), CreatedBy: "t1",
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			gone, err := s.Create(ctx, announcement.CreateInput{
				Message: "gone", ExpirationDate: daysFromNow(1), CreatedBy: "t1",
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			if err := s.Delete(ctx, gone.ID); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := s.GetByID(ctx, gone.ID); err != announcement.ErrNotFound {
				t.Errorf("deleted record still readable: %v", err)
			}
			if _, err := s.GetByID(ctx, keep.ID); err != nil {
				t.Errorf("unrelated record removed: %v", err)
			}
		})
	}
}
