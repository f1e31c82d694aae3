package handlers

import (
	portssvc "github.com/SscSPs/fx_lookup_app/internal/core/ports/services"
	"github.com/SscSPs/fx_lookup_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shortURLHandler handles HTTP requests for shortened URLs.
type shortURLHandler struct {
	urlShortenerService portssvc.URLShortenerSvc
}

// registerShortURLRoutes registers routes related to URL shortening.
func registerShortURLRoutes(rg *gin.RouterGroup, urlShortenerService portssvc.URLShortenerSvc) {
	h := &shortURLHandler{urlShortenerService: urlShortenerService}
	rg.POST("/short-urls", h.createShortURL)
}

// createShortURL godoc
// @Summary Shorten a URL
// @Description Asks is.gd for a short link to the given URL
// @Tags short urls
// @Accept  json
// @Produce  json
// @Param   request body map[string]string true "Object with a 'url' field"
// @Success 200 {object} domain.ShortURLResponse
// @Failure 400 {object} domain.ErrorResponse "Missing url"
// @Failure 502 {object} domain.ErrorResponse "Shortener failure"
// @Router /short-urls [post]
func (h *shortURLHandler) createShortURL(c *gin.Context) {
	middleware.GetLoggerFromContext(c).Info("Received shorten request")
	writeResponse(c, h.urlShortenerService.Handle(c.Request.Context(), requestFromJSONBody(c)))
}
