package domain

import (
	"strings"

	"github.com/SscSPs/fx_lookup_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Caller-facing validation messages for the currency field.
const (
	MsgMissingCurrency = "Missing or invalid 'currency' field in the request."
	MsgInvalidCurrency = "Invalid currency format. Expected a 3-letter uppercase code (e.g., 'CAD')."
)

// currencyCodeTag is the validator rule equivalent of ^[A-Z]{3}$.
const currencyCodeTag = "len=3,alpha,uppercase"

var validate = validator.New()

// CurrencyCode is a normalized three-letter code such as USD or CAD.
type CurrencyCode string

func (c CurrencyCode) String() string {
	return string(c)
}

// ParseCurrencyCode validates a raw request value and returns its normalized form.
// The value must be a non-blank string; it is trimmed and uppercased once and the
// result must be exactly three letters A-Z.
func ParseCurrencyCode(raw any) (CurrencyCode, error) {
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", apperrors.NewValidationError(MsgMissingCurrency)
	}

	// Full case mapping, so e.g. "ß" becomes "SS" before the format check.
	normalized := cases.Upper(language.Und).String(strings.TrimSpace(s))
	if err := validate.Var(normalized, currencyCodeTag); err != nil {
		return "", apperrors.NewValidationError(MsgInvalidCurrency)
	}

	return CurrencyCode(normalized), nil
}
