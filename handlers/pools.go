package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/174hz/duelkings/middleware"
	"github.com/174hz/duelkings/models"
)

// Pools returns the full pools document with every pool's status evaluated.
func (h *Handler) Pools(c echo.Context) error {
	doc, err := h.store.Pools()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	results, err := h.store.Results()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	preview := middleware.PreviewOpen(c)
	for i, pool := range doc.Pools {
		doc.Pools[i] = h.evaluated(pool, results[pool.ID], preview)
	}

	return c.JSON(http.StatusOK, doc)
}

// PoolByID returns one pool with its status evaluated.
func (h *Handler) PoolByID(c echo.Context) error {
	pool, err := h.loadPool(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pool)
}

// CurrentPool returns the pool named by currentPoolId, falling back to the
// first pool in the document.
func (h *Handler) CurrentPool(c echo.Context) error {
	doc, err := h.store.Pools()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pool, ok := doc.CurrentPool()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no pools published")
	}

	results, err := h.store.PoolResults(pool.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.evaluated(pool, results, middleware.PreviewOpen(c)))
}

// Sports returns the distinct sport tags in authoring order.
func (h *Handler) Sports(c echo.Context) error {
	doc, err := h.store.Pools()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	seen := map[string]bool{}
	sports := []string{}
	for _, pool := range doc.Pools {
		if !seen[pool.Sport] {
			seen[pool.Sport] = true
			sports = append(sports, pool.Sport)
		}
	}

	return c.JSON(http.StatusOK, sports)
}

// PoolResults returns the results map for one pool's games. A pool with no
// results yet yields an empty object.
func (h *Handler) PoolResults(c echo.Context) error {
	doc, err := h.store.Pools()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, ok := doc.FindPool(c.Param("id")); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown pool")
	}

	results, err := h.store.PoolResults(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if results == nil {
		results = models.PoolResults{}
	}

	return c.JSON(http.StatusOK, results)
}

// loadPool fetches the :id pool with status evaluated, translating lookup
// failures into HTTP errors.
func (h *Handler) loadPool(c echo.Context) (models.Pool, error) {
	doc, err := h.store.Pools()
	if err != nil {
		return models.Pool{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pool, ok := doc.FindPool(c.Param("id"))
	if !ok {
		return models.Pool{}, echo.NewHTTPError(http.StatusNotFound, "unknown pool")
	}

	results, err := h.store.PoolResults(pool.ID)
	if err != nil {
		return models.Pool{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.evaluated(pool, results, middleware.PreviewOpen(c)), nil
}
