package errors

import (
	"fmt"
)

// AppError is the error shape every layer hands back to the delivery layer.
// Details carries field-keyed validation messages.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy carrying field-keyed details, so the
// predeclared sentinels stay immutable.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithField is a shorthand for a single field -> message detail.
func (e *AppError) WithField(field, message string) *AppError {
	return e.WithDetails(map[string]interface{}{field: message})
}

// WithMessage returns a copy with a replaced message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}
