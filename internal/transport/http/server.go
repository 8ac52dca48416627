// Package http exposes the chat hub over HTTP and WebSocket.
package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/auth"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/config"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/core"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/metrics"
)

// NewServer builds an HTTP server with the health, metrics and WebSocket
// routes. A nil metrics value disables /metrics.
func NewServer(hub *core.Hub, cfg *config.Config, m *metrics.Metrics, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	verifier := auth.NewVerifier(&auth.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}, cfg.JWTRequired)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	if m != nil && cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, verifier, m, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
