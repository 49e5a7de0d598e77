package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/174hz/duelkings/models"
	"github.com/174hz/duelkings/pickem"
)

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type rotateResponse struct {
	File string               `json:"file"`
	Doc  models.PoolsDocument `json:"doc"`
}

// ValidatePools runs the authoring validator over a posted pools document
// and returns the error list. Used by the admin panel before a copy-paste
// save.
func (h *Handler) ValidatePools(c echo.Context) error {
	var doc models.PoolsDocument
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	errs := pickem.ValidatePools(doc)
	return c.JSON(http.StatusOK, validateResponse{
		Valid:  len(errs) == 0,
		Errors: append([]string{}, errs...),
	})
}

// RotatePool advances currentPoolId to the next pool of the given sport and
// returns the updated document for pasting back into data/pools.json.
// Nothing is written server-side.
func (h *Handler) RotatePool(c echo.Context) error {
	sport := c.QueryParam("sport")
	if sport == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing sport param")
	}

	doc, err := h.store.Pools()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !pickem.RotateCurrentPool(&doc, sport) {
		return echo.NewHTTPError(http.StatusNotFound, "no pools for sport")
	}

	return c.JSONPretty(http.StatusOK, rotateResponse{
		File: "data/pools.json",
		Doc:  doc,
	}, "  ")
}
