package domain

// Request is the JSON-like object a caller hands to a handler.
// Handlers only consult the fields they need.
type Request map[string]any

// Field returns the raw value stored under key and whether it was present.
func (r Request) Field(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	return v, ok
}

// Response is the single result of one handler invocation.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"` // JSON encoded
}

// Header names attached to every Response.
const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderContentType  = "Content-Type"
)

// ResponseHeaders is the fixed header set attached to every Response.
type ResponseHeaders struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
	ContentType  string
}

// DefaultResponseHeaders returns the CORS and content-type headers used when nothing is configured.
func DefaultResponseHeaders() ResponseHeaders {
	return ResponseHeaders{
		AllowOrigin:  "*",
		AllowHeaders: "Content-Type,Authorization",
		AllowMethods: "GET,POST,OPTIONS",
		ContentType:  "application/json",
	}
}

// Map returns a fresh header map, so callers may mutate it without affecting other responses.
func (h ResponseHeaders) Map() map[string]string {
	return map[string]string{
		HeaderAllowOrigin:  h.AllowOrigin,
		HeaderAllowHeaders: h.AllowHeaders,
		HeaderAllowMethods: h.AllowMethods,
		HeaderContentType:  h.ContentType,
	}
}

// UpstreamReply is what an HTTP getter hands back for one GET.
type UpstreamReply struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the reply carries a 2xx status.
func (r *UpstreamReply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}
