package api

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"postal-distance-service/internal/api/handlers"
	"postal-distance-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns the
// gin engine. This is the API composition root (handlers stay unaware of
// concrete adapters).
//
// templatesGlob may be empty to skip HTML template loading (JSON-only use,
// e.g. in tests that never render pages).
func NewRouter(querier ports.DistanceQuerier, sessionSecret string, templatesGlob string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware(), loggingMiddleware())

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("pdsession", store))

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
	}

	pages := &handlers.PageHandler{
		Querier: querier,
		Busy:    handlers.NewBusyGuard(),
	}
	batch := &handlers.BatchHandler{Querier: querier}

	r.GET("/health", handlers.Health)
	r.GET("/", pages.Index)
	r.POST("/query", pages.Query)
	r.POST("/theme", pages.ToggleTheme)
	r.POST("/api/batch", batch.Compute)

	return r
}
