// Package errs provides the typed error taxonomy shared across the matching pipeline.
package errs

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates a component was used before initialization or
// with an invalid configuration.
type ConfigurationError struct {
	Component string
	Message   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

// UpstreamServiceError indicates a failure in an external collaborator
// (completion service, persistence, discovery).
type UpstreamServiceError struct {
	Service   string
	Operation string
	Context   string
	Cause     error
}

func (e *UpstreamServiceError) Error() string {
	msg := fmt.Sprintf("upstream service %s failed during %s", e.Service, e.Operation)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UpstreamServiceError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates a referenced profile or opportunity is absent
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError indicates malformed input, e.g. an opportunity missing
// required fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation error: %s", e.Reason)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUpstream reports whether err wraps an UpstreamServiceError
func IsUpstream(err error) bool {
	var up *UpstreamServiceError
	return errors.As(err, &up)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConfiguration reports whether err wraps a ConfigurationError
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
