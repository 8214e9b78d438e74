package handlers

import (
	"time"

	"bistro-pos-service/internal/config"
	"bistro-pos-service/internal/queue"
	"bistro-pos-service/internal/store"

	"go.uber.org/zap"
)

type Handler struct {
	Store  *store.Store
	Logger *zap.Logger
	Config config.Config
	Queue  *queue.Client

	// Clock is overridable so date-bucketed statistics are testable.
	Clock func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}
