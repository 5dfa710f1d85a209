// Package validator provides a thin wrapper around the go-playground/validator
// library, enabling declarative struct validation with standardized error
// formatting.
//
// Struct fields are validated using tags (e.g., `validate:"required"`) and
// violations are reported as a multi-error chain rooted at ErrValidation.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when
// validation fails, so callers can detect it with errors.Is.
var ErrValidation = errors.New("validation error")

var (
	// validator is the singleton go-playground validator instance.
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'TrackingID': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init initializes the validator with required-struct validation enabled.
// It is safe to call Init multiple times; only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError transforms a raw validator error into a human-readable
// multi-error chain whose first element is ErrValidation. Errors that are
// not validation errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a
// combined error that includes ErrValidation and one formatted message for
// each field that failed validation.
//
//	type Input struct {
//	    EscrowID string `validate:"required"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
