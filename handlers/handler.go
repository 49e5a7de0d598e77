package handlers

import (
	"time"

	"github.com/174hz/duelkings/models"
	"github.com/174hz/duelkings/pickem"
	"github.com/174hz/duelkings/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store  *store.Store
	policy pickem.ClosingPolicy

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Handler over the given store using the configured closing
// policy.
func New(st *store.Store, policy pickem.ClosingPolicy) *Handler {
	return &Handler{store: st, policy: policy, now: time.Now}
}

// evaluated returns a copy of the pool with its status freshly computed.
// Statuses are always derived at read time, never written back to disk.
func (h *Handler) evaluated(pool models.Pool, results models.PoolResults, previewOpen bool) models.Pool {
	pool.Status = pickem.EvaluateStatus(pool, results, h.now(), pickem.StatusOptions{
		Policy:      h.policy,
		PreviewOpen: previewOpen,
	})
	return pool
}
