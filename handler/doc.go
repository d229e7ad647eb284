// Package handler provides type-safe HTTP request handling with first-class
// support for DataStar partial updates.
//
// A handler is a generic function from a bound request to a Response:
//
//	type FieldRequest struct {
//		Field    string `path:"field" json:"-"`
//		Value    string `json:"value" form:"value"`
//	}
//
//	func validateField(ctx handler.Context, req FieldRequest) handler.Response {
//		return handler.Templ(views.Field(req.Field, state))
//	}
//
//	r.Post("/fields/{field}", handler.Wrap(validateField,
//		handler.WithBinders[handler.Context, FieldRequest](binder.Path(chi.URLParam), binder.Signals()),
//		handler.WithErrorHandler[handler.Context, FieldRequest](errorHandler),
//	))
//
// # Response Types
//
//   - Templ: an HTML fragment for regular requests, a patch for DataStar requests
//   - TemplWithStatus: same, with a status code for regular requests
//   - SSE: a sequence of patches, signals and scripts on the DataStar event stream
//   - JSON, JSONError: JSON envelopes; validation errors become 422 with field details
//   - Empty: 204 No Content
//   - Error: hands an error to the ErrorHandler
//
// # Error Handling
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler
// classifies them (HTTPError, validation errors, binder and upload errors),
// logs them with the request id, and renders an error page or, for DataStar
// requests, a toast patched into the notices container.
package handler
