package middleware

import (
	"log/slog"

	"campustix/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if err := corsCfg.Validate(); err != nil {
		slog.Error("invalid CORS configuration, falling back to defaults", "error", err.Error())
		return cors.Default()
	}

	return cors.New(corsCfg)
}
