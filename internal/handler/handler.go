package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options carries the non-service wiring for route registration.
type Options struct {
	Logger zerolog.Logger
	// StaticDir, when set, enables SPA serving with index.html fallback for
	// anything outside /api.
	StaticDir string
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, statsSvc service.StatsService, contactSvc service.ContactService, upstream Forwarder, opts Options) {
	r.Use(RequestLogger(opts.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:3001",
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIPrefix)
	{
		NewStatsHandler(statsSvc).Register(api)
		NewContactHandler(contactSvc).Register(api)
		NewProxyHandler(upstream, opts.Logger).Register(api)
	}

	if opts.StaticDir != "" {
		registerStatic(r, opts.StaticDir)
	}
}

// registerStatic serves the built frontend: real files when they exist,
// index.html for everything else so client-side routing works.
func registerStatic(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, APIPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
