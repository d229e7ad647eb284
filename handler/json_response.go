package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/biodata/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response. Errors are rendered through JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}

	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response. Validation errors become 422 with
// per-field details, HTTP errors keep their status.
//
//	return handler.JSONError(res.Err(), handler.WithJSONMeta(map[string]any{"focus": res.FocusTarget}))
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONResponse{Error: errorToDetail(err)},
	}

	var validationErrs validator.ValidationErrors
	var httpErr HTTPError
	switch {
	case errors.As(err, &validationErrs):
		r.status = http.StatusUnprocessableEntity
	case errors.As(err, &httpErr):
		r.status = httpErr.Code
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: make(map[string][]string, len(validationErrs)),
		}
		for _, f := range validationErrs.Fields() {
			detail.Details[f] = validationErrs.Get(f)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}
