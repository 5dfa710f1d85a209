package verification

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a condition whose kind is outside the supported set.
	ErrUnknownKind = errors.New("unknown condition kind")

	// ErrProviderNotConfigured indicates that no provider was registered for a condition kind.
	ErrProviderNotConfigured = errors.New("verification provider not configured")
)

// VerificationError reports that a provider call could not be completed or
// returned unusable data. It is assumed to be transient.
type VerificationError struct {
	Kind  Kind
	Cause error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s verification failed: %v", e.Kind, e.Cause)
}

func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports a condition that can never be evaluated, such as
// an unknown kind or missing parameters. Retrying cannot fix it.
type ConfigurationError struct {
	Kind  Kind
	Cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %q condition: %v", e.Kind, e.Cause)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// IsConfigurationError reports whether any error in err's tree is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsVerificationError reports whether any error in err's tree is a *VerificationError.
func IsVerificationError(err error) bool {
	var verErr *VerificationError
	return errors.As(err, &verErr)
}
