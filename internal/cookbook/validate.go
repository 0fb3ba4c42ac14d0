package cookbook

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError is a user-facing input error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// User-facing validation messages.
const (
	MsgLettersOrNumbers = "Must be letters or numbers"
	MsgInteger          = "Must be an integer"
	MsgDecimal          = "Must be a decimal"
)

var textPattern = regexp.MustCompile(`^[ÆØÅæøåa-zA-Z0-9\s]+$`)

// ValidateText reports whether s is made of letters, digits and whitespace.
// An empty string passes; constructors reject empty names separately.
func ValidateText(s string) error {
	if s == "" || textPattern.MatchString(s) {
		return nil
	}
	return &ValidationError{Message: MsgLettersOrNumbers}
}

// ParsePortions parses a portion count. Blank input means no portions set.
func ParsePortions(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "portions", Message: MsgInteger}
	}
	if n < 0 {
		return 0, &ValidationError{Field: "portions", Message: "Must not be negative"}
	}
	return n, nil
}

// ParseAmount parses an ingredient amount, accepting a comma as the decimal
// separator. Blank input means no amount. NaN and infinities are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "amount", Message: MsgDecimal}
	}
	return v, nil
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: field, Message: "Must not be empty"}
	}
	if err := ValidateText(name); err != nil {
		return &ValidationError{Field: field, Message: MsgLettersOrNumbers}
	}
	return nil
}
