package handlers

import (
	portssvc "github.com/SscSPs/fx_lookup_app/internal/core/ports/services"
	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	m *metrics.LookupMetrics,
) {
	r.GET("/health", getHealth)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerRateRoutes(v1, services.RateLookup)
	registerShortURLRoutes(v1, services.URLShortener)
}
