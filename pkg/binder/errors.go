package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable is returned when a request carries no data for the binder.
	// Chained binders skip it.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameters")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
)
