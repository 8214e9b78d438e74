package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

func readPathString(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// apiError carries a client-visible status and message out of a store
// update callback.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		response.Message(w, apiErr.status, apiErr.message)
	case errors.Is(err, models.ErrNotFound):
		response.Message(w, http.StatusNotFound, "Not found")
	default:
		h.Logger.Error("store update failed", zapError(err))
		response.Message(w, http.StatusInternalServerError, "Internal server error")
	}
}
