package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/174hz/duelkings/models"
	"github.com/174hz/duelkings/pickem"
)

type leaderboardResponse struct {
	PoolID    string            `json:"poolId"`
	Status    models.PoolStatus `json:"status"`
	Standings []pickem.Standing `json:"standings"`
}

// Leaderboard scores every submitted entry for the pool and returns the
// ranked standings. A pool with no entries yields an empty standings list.
func (h *Handler) Leaderboard(c echo.Context) error {
	pool, err := h.loadPool(c)
	if err != nil {
		return err
	}

	results, err := h.store.PoolResults(pool.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	entries, err := h.store.Entries(pool.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, leaderboardResponse{
		PoolID:    pool.ID,
		Status:    pool.Status,
		Standings: pickem.Leaderboard(pool, entries, results),
	})
}
