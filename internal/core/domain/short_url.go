package domain

import "github.com/SscSPs/fx_lookup_app/internal/apperrors"

// MsgMissingURL is returned when a shorten request carries no usable url.
const MsgMissingURL = "Missing required 'url' parameter in the request."

// ParseLongURL extracts the url to shorten. Any non-empty string is accepted as is.
func ParseLongURL(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", apperrors.NewValidationError(MsgMissingURL)
	}
	return s, nil
}

// ShortURLResponse is the success body of a shorten request.
type ShortURLResponse struct {
	ShortURL string `json:"shortUrl"`
}

// ErrorResponse is the body of every failed invocation.
type ErrorResponse struct {
	Error string `json:"error"`
}
