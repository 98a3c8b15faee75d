// internal/app/features/announcements/handler.go
package announcements

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/schoolhub/internal/app/store/announcement"
	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/app/system/webapi"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers. It depends only on the store
// interfaces, never on a concrete backend.
type Handler struct {
	Announcements announcement.Store
	Teachers      teacherstore.Store
	Log           *zap.Logger
}

// NewHandler constructs an Announcements Handler.
func NewHandler(anns announcement.Store, teachers teacherstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Announcements: anns,
		Teachers:      teachers,
		Log:           logger,
	}
}

// requireTeacher authorizes a management request from its ?username= query
// parameter. It runs before any other validation. When it returns ok=false
// the response has already been written.
func (h *Handler) requireTeacher(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := r.URL.Query().Get("username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	exists, err := h.Teachers.Exists(ctx, username)
	if err != nil {
		h.Log.Error("teacher lookup failed", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return "", false
	}
	if !exists {
		webapi.WriteError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return username, true
}

// announcementJSON is the response shape for a single announcement. The id
// is the hex string form of the stored ObjectID; start_date is rendered
// explicitly (null when unset) while the update audit fields appear only
// once the record has been updated.
type announcementJSON struct {
	ID             string     `json:"id"`
	Message        string     `json:"message"`
	StartDate      *string    `json:"start_date"`
	ExpirationDate string     `json:"expiration_date"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedBy      *string    `json:"updated_by,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func toJSON(ann models.Announcement) announcementJSON {
	return announcementJSON{
		ID:             ann.ID.Hex(),
		Message:        ann.Message,
		StartDate:      ann.StartDate,
		ExpirationDate: ann.ExpirationDate,
		CreatedBy:      ann.CreatedBy,
		CreatedAt:      ann.CreatedAt,
		UpdatedBy:      ann.UpdatedBy,
		UpdatedAt:      ann.UpdatedAt,
	}
}

func toJSONList(anns []models.Announcement) []announcementJSON {
	rows := make([]announcementJSON, 0, len(anns))
	for _, ann := range anns {
		rows = append(rows, toJSON(ann))
	}
	return rows
}
