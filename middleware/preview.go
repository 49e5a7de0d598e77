package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// previewKey is the echo context key holding the resolved preview flag.
const previewKey = "preview_open"

// Preview returns an Echo middleware that resolves the preview-mode flag for
// each request and stashes it on the context. defaultOn is the configured
// PREVIEW_MODE value; when allowHeader is set (debug builds only) a request
// may override it with an X-Preview-Mode header of "true" or "false".
func Preview(defaultOn, allowHeader bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			on := defaultOn
			if allowHeader {
				if raw := c.Request().Header.Get("X-Preview-Mode"); raw != "" {
					if v, err := strconv.ParseBool(raw); err == nil {
						on = v
					}
				}
			}
			c.Set(previewKey, on)
			return next(c)
		}
	}
}

// PreviewOpen reports whether the request runs in preview mode.
func PreviewOpen(c echo.Context) bool {
	on, _ := c.Get(previewKey).(bool)
	return on
}
