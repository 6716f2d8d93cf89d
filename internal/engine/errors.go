package engine

import (
	"errors"

	"github.com/tartampluch/go-age/internal/config"
)

// Validation failures reported to the caller. They are resolved at the boundary
// between the raw string and CalendarDate/AgeBreakdown and never reach the
// arithmetic in ComputeAge.
var (
	ErrMissingInput = errors.New(config.ErrMissingInput)
	ErrInvalidDate  = errors.New(config.ErrInvalidDate)
	ErrFutureDate   = errors.New(config.ErrFutureDate)
)

// IsValidationError reports whether err is one of the input validation kinds.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrFutureDate)
}
