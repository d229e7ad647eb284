package biodataform

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/biodata/handler"
	"github.com/dmitrymomot/biodata/pkg/biodata"
	"github.com/dmitrymomot/biodata/pkg/binder"
	"github.com/dmitrymomot/biodata/pkg/logger"
)

// APIService validates biodata submitted as JSON. It applies the same rules
// and messages as the page and stores nothing.
type APIService struct {
	validator *biodata.Validator
	metrics   *Metrics
	log       *slog.Logger
}

func NewAPIService(validator *biodata.Validator, metrics *Metrics, log *slog.Logger) *APIService {
	if log == nil {
		log = slog.Default()
	}
	return &APIService{
		validator: validator,
		metrics:   metrics,
		log:       log.With(logger.Component("biodataform_api")),
	}
}

func (s *APIService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/fields", handler.Wrap(s.fields,
		handler.WithErrorHandler[handler.Context, struct{}](s.jsonError),
	))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.jsonError),
	))

	return r
}

// FieldInfo describes a form field for API clients.
type FieldInfo struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    string   `json:"required_message"`
	Invalid     string   `json:"invalid_message,omitempty"`
	Options     []string `json:"options,omitempty"`
}

func (s *APIService) fields(ctx handler.Context, _ struct{}) handler.Response {
	msgs := s.validator.Messages()
	out := make([]FieldInfo, 0, len(biodata.Fields))
	for _, f := range biodata.Fields {
		info := FieldInfo{
			ID:          f.String(),
			Label:       msgs.Label(f),
			Placeholder: msgs.Placeholder(f),
			Required:    msgs.RequiredMessage(f),
		}
		if biodata.HasRule(f) {
			info.Invalid = msgs.InvalidMessage(f)
		}
		if f.IsSelect() {
			info.Options = biodata.BloodGroups
		}
		out = append(out, info)
	}
	return handler.JSON(out)
}

// ValidateRequest is a whole form as JSON. Fields listed in Optional may be
// left empty; their rule still applies.
type ValidateRequest struct {
	Values
	Optional []string `json:"optional,omitempty"`
}

// ValidateResponse is returned for a valid form.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (s *APIService) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	optional, err := parseFields(req.Optional)
	if err != nil {
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "unknown_field"))
	}

	res := s.validator.ValidateForm(biodata.Controls(req.Values.Map(), optional...))
	s.metrics.observeSubmit(res)

	if err := res.Err(); err != nil {
		s.log.DebugContext(ctx, "biodata rejected",
			logger.Outcome("invalid"),
			logger.Field(res.FocusTarget.String()),
		)
		return handler.JSONError(err, handler.WithJSONMeta(map[string]any{
			"focus": res.FocusTarget,
		}))
	}
	return handler.JSON(ValidateResponse{Valid: true})
}

// jsonError answers binding and rendering failures with a JSON envelope.
func (s *APIService) jsonError(ctx handler.Context, err error) {
	info := handler.ClassifyError(err)
	s.log.LogAttrs(ctx, info.LogLevel, "api request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
	)

	var httpErr handler.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = handler.NewHTTPError(info.StatusCode, statusKey(info.StatusCode))
	}
	if renderErr := handler.JSONError(httpErr).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		s.log.ErrorContext(ctx, "failed to render api error", logger.Error(renderErr))
	}
}

func statusKey(code int) string {
	return strings.ToLower(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}
