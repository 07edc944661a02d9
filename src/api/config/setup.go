package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API (health + info)
type APIConfig struct {
	DB          *sql.DB
	Version     string
	ServiceName string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version:     "dev",
		ServiceName: "firmeza-sales-service",
	}
}

// SetupAPIModule registra los endpoints de health check e información del API
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "disabled"

		if cfg.DB != nil {
			dbStatus = "up"
			if err := cfg.DB.Ping(); err != nil {
				dbStatus = "down"
				status = "degraded"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
