package handlers

import (
	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// requestFromJSONBody decodes the body as a JSON object.
// Anything that is not a JSON object becomes an empty Request, which the
// handlers reject as a missing field.
func requestFromJSONBody(c *gin.Context) domain.Request {
	var req domain.Request
	if err := c.ShouldBindJSON(&req); err != nil || req == nil {
		return domain.Request{}
	}
	return req
}

// writeResponse relays a handler Response verbatim: status, every header and the body.
func writeResponse(c *gin.Context, res domain.Response) {
	for name, value := range res.Headers {
		c.Header(name, value)
	}

	contentType := res.Headers[domain.HeaderContentType]
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(res.StatusCode, contentType, []byte(res.Body))
}
