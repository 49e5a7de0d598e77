package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/174hz/duelkings/models"
)

type formatEntryRequest struct {
	User  string                 `json:"user"`
	Picks map[string]models.Pick `json:"picks"`
}

type formatEntryResponse struct {
	File  string       `json:"file"`
	Entry models.Entry `json:"entry"`
}

// Entries returns the submitted entries for one pool.
func (h *Handler) Entries(c echo.Context) error {
	pool, err := h.loadPool(c)
	if err != nil {
		return err
	}

	entries, err := h.store.Entries(pool.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entries)
}

// FormatEntry validates a submission against the pool and returns the JSON
// block the user pastes into data/entries.json. There is no write path:
// submission stays copy-paste by design.
func (h *Handler) FormatEntry(c echo.Context) error {
	pool, err := h.loadPool(c)
	if err != nil {
		return err
	}
	if pool.Status != models.StatusOpen {
		return echo.NewHTTPError(http.StatusConflict,
			fmt.Sprintf("pool is %s, picks are locked", pool.Status))
	}

	var req formatEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.User == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user is required")
	}
	if len(req.Picks) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no picks made")
	}

	games := map[string]bool{}
	for _, g := range pool.Games {
		games[g.ID] = true
	}

	for gameID, pick := range req.Picks {
		if !games[gameID] {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("unknown game id %s", gameID))
		}
		if err := validatePick(gameID, pick); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSONPretty(http.StatusOK, formatEntryResponse{
		File: "data/entries.json",
		Entry: models.Entry{
			User:   req.User,
			PoolID: pool.ID,
			Picks:  req.Picks,
		},
	}, "  ")
}

// validatePick checks that each chosen side is legal for its bet type.
func validatePick(gameID string, pick models.Pick) error {
	if pick.Empty() {
		return fmt.Errorf("game %s: empty pick", gameID)
	}
	if s := pick.Spread; s != "" && s != models.SideAway && s != models.SideHome {
		return fmt.Errorf("game %s: spread pick must be away or home", gameID)
	}
	if s := pick.Moneyline; s != "" && s != models.SideAway && s != models.SideHome {
		return fmt.Errorf("game %s: moneyline pick must be away or home", gameID)
	}
	if s := pick.Total; s != "" && s != models.SideOver && s != models.SideUnder {
		return fmt.Errorf("game %s: total pick must be over or under", gameID)
	}
	return nil
}
