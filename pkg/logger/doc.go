// Package logger builds *slog.Logger instances with functional options and
// injects request scoped values from context.Context into every record.
//
// WithEnvironment maps APP_ENV to a preset: development logs text at debug
// level, staging and production log JSON at info. Registered ContextExtractor
// callbacks run on every record, so values such as the request id follow the
// request without being passed around.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "field validated",
//	    logger.Field("contact"),
//	    logger.Outcome("rule"),
//	)
//
// Attribute helpers keep key names consistent. Form values are never logged,
// only field identifiers and outcomes.
package logger
