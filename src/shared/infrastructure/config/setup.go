package config

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración para los middlewares compartidos
type SharedConfig struct {
	EnableGzip        bool
	GzipExcludedPaths []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableGzip:        true,
		GzipExcludedPaths: []string{"/health", "/metrics", "/api/v1/health"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	// Aplicar middleware de compresión gzip si está habilitado
	if config.EnableGzip {
		router.Use(gzip.Gzip(
			gzip.DefaultCompression,
			gzip.WithExcludedPaths(config.GzipExcludedPaths),
		))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// Por ejemplo:
	// - CORS
	// - Autenticación/Autorización
}
