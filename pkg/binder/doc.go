// Package binder binds HTTP request data to Go structs.
//
// Binders share the signature func(r *http.Request, v any) error and are
// chained by handler.Wrap. A binder that finds nothing to bind in a request
// returns ErrBinderNotApplicable and the chain moves on, so one handler can
// accept DataStar signals, a classic form post and path parameters at once:
//
//	handler.WithBinders[handler.Context, FieldRequest](
//		binder.Path(chi.URLParam), // path:"field"
//		binder.Signals(),          // json tags, DataStar requests
//		binder.Form(),             // form tags, form posts
//	)
//
// # Available Binders
//
//   - Path(extractor): path parameters through a router specific extractor
//   - Signals(): DataStar signals from the query string or a JSON body
//   - Form(), FormWithMaxMemory(n): urlencoded and multipart forms, including files
//   - JSON(): strict JSON bodies
//
// Values are bound exactly as sent. Trimming and normalization are part of
// validation, not binding.
//
// # File Uploads
//
// Files are bound through the `file:` struct tag to *multipart.FileHeader or
// []*multipart.FileHeader. Filenames are sanitized before they reach the handler.
package binder
