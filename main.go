package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/174hz/duelkings/config"
	"github.com/174hz/duelkings/handlers"
	applog "github.com/174hz/duelkings/logger"
	mw "github.com/174hz/duelkings/middleware"
	"github.com/174hz/duelkings/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	st := store.New(cfg.DataDir, cfg.EntriesShape)
	h := handlers.New(st, cfg.ClosingPolicy)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"*", "X-Preview-Mode"},
		AllowCredentials: true,
	}))

	// The preview override is resolved per request and threaded into every
	// status evaluation; the header is only honored in debug builds.
	api := e.Group("/api", mw.Preview(cfg.PreviewMode, cfg.Debug))
	api.GET("/pools", h.Pools)
	api.GET("/pools/current", h.CurrentPool)
	api.GET("/pools/:id", h.PoolByID)
	api.GET("/pools/:id/results", h.PoolResults)
	api.GET("/pools/:id/entries", h.Entries)
	api.GET("/pools/:id/leaderboard", h.Leaderboard)
	api.POST("/pools/:id/entries/format", h.FormatEntry)
	api.GET("/sports", h.Sports)
	api.POST("/admin/validate", h.ValidatePools)
	api.POST("/admin/rotate", h.RotatePool)

	// Static front end with SPA fallback for client-side routing.
	fileServer := http.FileServer(http.Dir(cfg.WebDir))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		// If request is for a static file, serve it
		if strings.Contains(path, ".") { // Matches JS, CSS, images, etc.
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		indexFile, err := os.Open(filepath.Join(cfg.WebDir, "index.html"))
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer indexFile.Close()

		return c.Stream(http.StatusOK, "text/html", indexFile)
	})

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
