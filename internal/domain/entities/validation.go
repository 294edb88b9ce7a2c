package entities

import (
	"fmt"
	"strings"
)

// Rating bounds shared by drivers and passengers.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field error found in one pass, so a caller
// (or a prompt loop) can report all problems at once instead of one per retry.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the collected errors as an error, or nil when there are none.
// Returning a typed nil slice directly would produce a non-nil error interface.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func validRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}
