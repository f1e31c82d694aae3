package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSSettings mirrors the headers every invocation response carries.
// Values are comma separated lists, as they appear on the wire.
type CORSSettings struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

// CORS answers preflight requests with the same allow lists the handlers attach to their responses.
func CORS(settings CORSSettings) gin.HandlerFunc {
	cfg := cors.Config{
		AllowHeaders: splitList(settings.AllowHeaders),
		AllowMethods: splitList(settings.AllowMethods),
	}

	origin := strings.TrimSpace(settings.AllowOrigin)
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = splitList(origin)
	}

	return cors.New(cfg)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
