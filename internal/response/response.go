// Package response builds the envelope every enveloped endpoint returns:
//
//	{ "success": true, "message": "...", "data": ... }
package response

import "github.com/deppfellow/boardhub/internal/errs"

// Envelope is the uniform response wrapper.
//
// Code and Errors are only set on failures produced by the error funnel.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// Build wraps a success flag, a message and an optional payload.
func Build(success bool, message string, data ...any) Envelope {
	env := Envelope{Success: success, Message: message}
	if len(data) > 0 {
		env.Data = data[0]
	}
	return env
}

// Success is shorthand for Build(true, ...).
func Success(message string, data ...any) Envelope {
	return Build(true, message, data...)
}

// Failure builds the envelope for an HTTP error.
func Failure(err *errs.HTTPError) Envelope {
	return Envelope{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
		Errors:  err.Errors,
	}
}
