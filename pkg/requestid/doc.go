// Package requestid correlates log records of one HTTP request.
//
// Middleware assigns every request an id, taken from a valid X-Request-ID
// header or freshly generated, and stores it in the request context.
// LoggerExtractor plugs into logger.WithContextExtractors so that every
// record logged with the request context carries it:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
