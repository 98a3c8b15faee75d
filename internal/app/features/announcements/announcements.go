// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/schoolhub/internal/app/store/announcement"
	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/app/system/webapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// announcementBody is the request body for Create and Update. StartDate is
// a pointer so Update can distinguish an omitted field (leave the stored
// value alone) from an explicit empty string (clear it) from a value (set).
type announcementBody struct {
	Message        string  `json:"message"`
	ExpirationDate string  `json:"expiration_date"`
	StartDate      *string `json:"start_date"`
}

// validate checks the body fields in contract order and writes the 400
// response itself on failure.
func (b *announcementBody) validate(w http.ResponseWriter) bool {
	if b.ExpirationDate == "" {
		webapi.WriteError(w, http.StatusBadRequest, "expiration date required")
		return false
	}
	if strings.TrimSpace(b.Message) == "" {
		webapi.WriteError(w, http.StatusBadRequest, "message required")
		return false
	}
	if !dates.IsValid(b.ExpirationDate) {
		webapi.WriteError(w, http.StatusBadRequest, "invalid expiration date")
		return false
	}
	if b.StartDate != nil && *b.StartDate != "" && !dates.IsValid(*b.StartDate) {
		webapi.WriteError(w, http.StatusBadRequest, "invalid start date")
		return false
	}
	return true
}

// ListActive handles GET /announcements. Public: returns every announcement
// whose activation window covers today.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Announcements.ListActive(ctx, dates.Today())
	if err != nil {
		h.Log.Error("failed to list active announcements", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return
	}

	webapi.WriteJSON(w, http.StatusOK, toJSONList(anns))
}

// ListAll handles GET /announcements/all for the management interface.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireTeacher(w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Announcements.ListAll(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return
	}

	webapi.WriteJSON(w, http.StatusOK, toJSONList(anns))
}

// Create handles POST /announcements.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireTeacher(w, r)
	if !ok {
		return
	}

	var body announcementBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		webapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.validate(w) {
		return
	}

	in := announcement.CreateInput{
		Message:        strings.TrimSpace(body.Message),
		ExpirationDate: body.ExpirationDate,
		CreatedBy:      username,
	}
	// An empty start date on create means the same as none at all.
	if body.StartDate != nil && *body.StartDate != "" {
		in.StartDate = body.StartDate
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ann, err := h.Announcements.Create(ctx, in)
	if err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return
	}

	webapi.WriteJSON(w, http.StatusCreated, toJSON(*ann))
}

// Update handles PUT /announcements/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireTeacher(w, r)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webapi.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var body announcementBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		webapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.validate(w) {
		return
	}

	in := announcement.UpdateInput{
		Message:        strings.TrimSpace(body.Message),
		ExpirationDate: body.ExpirationDate,
		UpdatedBy:      username,
		StartDate:      body.StartDate,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ann, err := h.Announcements.Update(ctx, id, in)
	if errors.Is(err, announcement.ErrNotFound) {
		webapi.WriteError(w, http.StatusNotFound, "announcement not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to update announcement", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return
	}

	webapi.WriteJSON(w, http.StatusOK, toJSON(*ann))
}

// Delete handles DELETE /announcements/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireTeacher(w, r); !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webapi.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Announcements.Delete(ctx, id)
	if errors.Is(err, announcement.ErrNotFound) {
		webapi.WriteError(w, http.StatusNotFound, "announcement not found")
		return
	}
	if err != nil {
		h.Log.Error("failed to delete announcement", zap.Error(err), zap.String("path", r.URL.Path))
		webapi.WriteInternalError(w)
		return
	}

	webapi.WriteJSON(w, http.StatusOK, map[string]string{"message": "announcement deleted"})
}
