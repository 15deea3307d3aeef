package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
)
