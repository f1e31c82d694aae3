package handlers

import (
	"log/slog"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_lookup_app/internal/core/ports/services"
	"github.com/SscSPs/fx_lookup_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for the latest exchange rates.
type rateHandler struct {
	rateLookupService portssvc.RateLookupSvc
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rls portssvc.RateLookupSvc) *rateHandler {
	return &rateHandler{
		rateLookupService: rls,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateLookupService portssvc.RateLookupSvc) {
	h := newRateHandler(rateLookupService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.lookupRates)
		rates.GET("", h.lookupRatesByQuery)
		rates.GET("/:currency", h.lookupRatesByPath)
	}
}

// lookupRates godoc
// @Summary Get the latest exchange rates
// @Description Looks up the latest rates for a base currency given in the JSON body
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   request body map[string]string true "Object with a 'currency' field, e.g. {\"currency\":\"CAD\"}"
// @Success 200 {object} map[string]interface{} "Upstream payload, unmodified"
// @Failure 400 {object} domain.ErrorResponse "Missing or malformed currency"
// @Failure 502 {object} domain.ErrorResponse "Rate service failure"
// @Router /rates [post]
func (h *rateHandler) lookupRates(c *gin.Context) {
	h.invoke(c, requestFromJSONBody(c))
}

// lookupRatesByQuery godoc
// @Summary Get the latest exchange rates
// @Description Same as the POST form, reading ?currency=
// @Tags rates
// @Produce  json
// @Param   currency query string true "Base currency code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /rates [get]
func (h *rateHandler) lookupRatesByQuery(c *gin.Context) {
	req := domain.Request{}
	if currency, ok := c.GetQuery("currency"); ok {
		req["currency"] = currency
	}
	h.invoke(c, req)
}

// lookupRatesByPath godoc
// @Summary Get the latest exchange rates
// @Tags rates
// @Produce  json
// @Param   currency path string true "Base currency code (3 letters)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /rates/{currency} [get]
func (h *rateHandler) lookupRatesByPath(c *gin.Context) {
	h.invoke(c, domain.Request{"currency": c.Param("currency")})
}

func (h *rateHandler) invoke(c *gin.Context, req domain.Request) {
	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Received rate lookup request", slog.Any("currency", req["currency"]))

	res := h.rateLookupService.Handle(c.Request.Context(), req)
	writeResponse(c, res)
}
