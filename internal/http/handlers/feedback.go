package handlers

import (
	"net/http"
	"time"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"

	"github.com/google/uuid"
)

type createFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackCreate accepts anonymous guest feedback; no authentication.
func (h *Handler) FeedbackCreate(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := h.now().Format(time.RFC3339)
	entry := models.Feedback{
		ID:        uuid.NewString(),
		Rating:    req.Rating,
		Comment:   req.Comment,
		Timestamp: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := h.Store.Update(func(d *store.Data) error {
		d.Feedback = append(d.Feedback, entry)
		return nil
	})
	if err != nil {
		h.respondStoreError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, entry)
}

// FeedbackList returns all feedback entries.
func (h *Handler) FeedbackList(w http.ResponseWriter, r *http.Request) {
	out := []models.Feedback{}
	h.Store.View(func(d *store.Data) {
		out = append(out, d.Feedback...)
	})
	response.JSON(w, http.StatusOK, out)
}
