package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/biodata/pkg/binder"
	"github.com/dmitrymomot/biodata/pkg/file"
	"github.com/dmitrymomot/biodata/pkg/logger"
	"github.com/dmitrymomot/biodata/pkg/requestid"
	"github.com/dmitrymomot/biodata/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#notices")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchAppend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#notices"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchAppend
	}
	return cfg
}

// ClassifyError maps an error to a status code and a user facing message.
// Internal error text never reaches the message of a 5xx.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	case errors.As(err, &validationErrs):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = formatValidationErrors(validationErrs)
	case errors.Is(err, file.ErrFileTooLarge):
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Message = ErrRequestEntityTooLarge.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Message = ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrInvalidSignals),
		errors.Is(err, binder.ErrFailedToParseJSON):
		info.StatusCode = http.StatusBadRequest
		info.Message = ErrBadRequest.Key
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	if errs.IsEmpty() {
		return "Validation failed"
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, " ")
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.WarnContext(ctx, "no error toast component configured for DataStar request",
			logger.Component("error_handler"),
		)
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})

	// SSE responses always carry 200; the toast conveys the failure.
	response := Templ(component, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.ErrorContext(ctx, "failed to render error toast",
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

func renderHTTPResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if renderErr := component.Render(ctx, w); renderErr != nil {
		log.ErrorContext(ctx, "failed to render error page",
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type.
// For regular HTTP requests, it renders a full error page.
// For DataStar requests, it sends a toast notification.
// Configure this once in main.go and pass to all services.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)

	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx)
		info := ClassifyError(err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
		} else {
			renderHTTPResponse(ctx, cfg, info, requestID, log)
		}
	}
}
