// Package response defines the JSON envelopes written by every endpoint.
//
//	{"success": true, "data": ..., "count": n}
//	{"success": true, "message": "..."}
//	{"success": false, "error": "...", "code": "...", "errors": [...]}
package response

import "github.com/deppfellow/multitier-app/internal/errs"

// Response is the success envelope.
type Response struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Data wraps a single value.
func Data(v any) Response {
	return Response{Success: true, Data: v}
}

// List wraps a collection. Count is taken from the same slice as Data,
// and a nil slice is written as [].
func List[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	return Response{Success: true, Count: &count, Data: items}
}

// Message wraps a confirmation with no payload.
func Message(msg string) Response {
	return Response{Success: true, Message: msg}
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// Error builds a failure envelope from an HTTPError. The cause is never
// included.
func Error(err *errs.HTTPError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err.Message,
		Code:    err.Code,
		Errors:  err.Errors,
	}
}
