package biodataform

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/biodata/handler"
	"github.com/dmitrymomot/biodata/pkg/biodata"
	"github.com/dmitrymomot/biodata/pkg/binder"
	"github.com/dmitrymomot/biodata/pkg/file"
	"github.com/dmitrymomot/biodata/pkg/logger"
	"github.com/dmitrymomot/biodata/pkg/preview"
)

// FormService serves the biodata form page and its live validation endpoints.
type FormService struct {
	cfg          Config
	validator    *biodata.Validator
	previews     preview.Store
	views        *Views
	metrics      *Metrics
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	optional     map[biodata.Field]bool
}

// NewFormService wires the form endpoints. views and metrics may be nil; the
// default views are used and nothing is counted.
func NewFormService(
	cfg Config,
	validator *biodata.Validator,
	previews preview.Store,
	views *Views,
	metrics *Metrics,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
) (*FormService, error) {
	optional, err := cfg.Optional()
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = DefaultViews()
	}
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}

	s := &FormService{
		cfg:          cfg,
		validator:    validator,
		previews:     previews,
		views:        views,
		metrics:      metrics,
		log:          log.With(logger.Component("biodataform")),
		errorHandler: errorHandler,
		optional:     make(map[biodata.Field]bool, len(optional)),
	}
	for _, f := range optional {
		s.optional[f] = true
	}
	return s, nil
}

func (s *FormService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	// Signals for datastar requests, form values for plain posts.
	r.Post("/fields/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, FieldRequest](
			binder.Path(chi.URLParam),
			binder.Signals(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	))

	r.Post("/fields/birthDate/paste", handler.Wrap(s.pasteBirthDate,
		handler.WithBinders[handler.Context, Values](
			binder.Signals(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, Values](s.errorHandler),
	))

	r.Post("/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, Values](
			binder.Signals(),
			binder.FormWithMaxMemory(s.cfg.UploadMaxMemory),
		),
		handler.WithErrorHandler[handler.Context, Values](s.errorHandler),
	))

	r.Post("/photo", handler.Wrap(s.selectPhoto,
		handler.WithBinders[handler.Context, PhotoRequest](
			binder.FormWithMaxMemory(s.cfg.UploadMaxMemory),
		),
		handler.WithErrorHandler[handler.Context, PhotoRequest](s.errorHandler),
	))

	r.Get("/preview/{id}", handler.Wrap(s.servePreview,
		handler.WithBinders[handler.Context, PreviewRequest](
			binder.Path(chi.URLParam),
		),
		handler.WithErrorHandler[handler.Context, PreviewRequest](s.errorHandler),
	))

	return r
}

func (s *FormService) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(Values{}, "")))
}

// FieldRequest is one field validation triggered by input, change or blur.
type FieldRequest struct {
	Field string `path:"field" json:"-" form:"-"`
	Values
}

func (s *FormService) validateField(ctx handler.Context, req FieldRequest) handler.Response {
	f, err := biodata.ParseField(req.Field)
	if err != nil || f.IsFile() {
		return handler.Error(handler.NewHTTPError(http.StatusNotFound, "unknown_field"))
	}
	return s.presentField(ctx, f, req.Values)
}

// pasteBirthDate formats and validates the birth date after a paste landed.
func (s *FormService) pasteBirthDate(ctx handler.Context, values Values) handler.Response {
	return s.presentField(ctx, biodata.BirthDate, values)
}

func (s *FormService) presentField(ctx handler.Context, f biodata.Field, values Values) handler.Response {
	p := s.newPresenter(values)

	raw := values.Get(f)
	if formatted := biodata.NormalizeControl(f, raw); formatted != raw {
		p.setValue(f, formatted)
	}

	res := s.validator.Present(p, biodata.Control{
		Field:    f,
		Value:    p.values.Get(f),
		Required: s.required(f),
	})
	s.metrics.observeField(res)
	if !res.Valid {
		s.log.DebugContext(ctx, "field invalid",
			logger.Field(f.String()),
			logger.Outcome(string(res.Reason)),
		)
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(p.stream)
	}
	return handler.Templ(p.fragment())
}

func (s *FormService) submit(ctx handler.Context, values Values) handler.Response {
	p := s.newPresenter(values)
	controls := biodata.Controls(values.Map(), s.optionalFields()...)

	res := s.validator.Submit(p, controls)
	s.metrics.observeSubmit(res)

	if res.Valid {
		s.log.InfoContext(ctx, "biodata submitted", logger.Outcome("valid"))
	} else {
		s.log.DebugContext(ctx, "biodata rejected",
			logger.Outcome("invalid"),
			logger.Field(res.FocusTarget.String()),
			slog.Int("invalid_fields", len(res.Invalid())),
		)
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(p.stream)
	}

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	return handler.TemplWithStatus(status, s.views.Page(p.page()))
}

// PhotoRequest is a photo selection posted as multipart form. The value
// controls travel along so a plain post can re-render the page with them.
type PhotoRequest struct {
	Values
	Photo *multipart.FileHeader `file:"photoUpload"`
	// PreviewID is the reference the page currently shows; it is released
	// when a new preview replaces it.
	PreviewID string `form:"previewId"`
}

func (s *FormService) selectPhoto(ctx handler.Context, req PhotoRequest) handler.Response {
	sel := biodata.PhotoSelection{Present: req.Photo != nil}
	if req.Photo != nil {
		sel.ContentType = file.DeclaredContentType(req.Photo)
	}

	p := s.newPresenter(req.Values)
	decision, err := s.validator.SelectPhoto(p, sel, func() (string, error) {
		return s.createPreview(ctx, req, p)
	})
	s.metrics.observePhoto(decision)
	if err != nil {
		if errors.Is(err, file.ErrFileTooLarge) {
			return handler.Error(handler.ErrRequestEntityTooLarge)
		}
		return handler.Error(err)
	}

	switch decision {
	case biodata.PhotoIgnore:
		return handler.Empty()
	case biodata.PhotoReject:
		s.log.InfoContext(ctx, "photo rejected",
			logger.Field(biodata.PhotoUpload.String()),
			logger.Outcome(decision.String()),
			slog.String("content_type", sel.ContentType),
		)
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(p.stream)
	}
	if decision != biodata.PhotoPreview && req.PreviewID != "" {
		p.keepPreviewID(req.PreviewID)
	}
	return handler.Templ(s.views.Page(p.page()))
}

func (s *FormService) createPreview(ctx handler.Context, req PhotoRequest, p *pagePresenter) (string, error) {
	up, err := file.Read(req.Photo, s.cfg.PhotoMaxSize)
	if err != nil {
		return "", err
	}

	// The declared type decides; a disagreeing sniff is only worth a note.
	if sniffed, err := file.DetectContentType(req.Photo); err == nil && sniffed != up.ContentType {
		s.log.DebugContext(ctx, "photo content type mismatch",
			slog.String("declared", up.ContentType),
			slog.String("sniffed", sniffed),
		)
	}

	ref, err := s.previews.Replace(ctx, req.PreviewID, up.Filename, up.ContentType, up.Data)
	if err != nil {
		return "", err
	}
	p.setPreviewID(ref.ID)
	return ref.URL, nil
}

// PreviewRequest addresses a preview reference.
type PreviewRequest struct {
	ID string `path:"id"`
}

func (s *FormService) servePreview(ctx handler.Context, req PreviewRequest) handler.Response {
	obj, err := s.previews.Get(ctx, req.ID)
	if errors.Is(err, preview.ErrNotFound) {
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return handler.Error(err)
	}
	return previewResponse{obj: obj}
}

type previewResponse struct {
	obj preview.Object
}

// previewPolicy keeps a previewed document inert when it is opened directly:
// an SVG may carry scripts, and the bytes are served from this origin.
const previewPolicy = "default-src 'none'; img-src 'self'; style-src 'unsafe-inline'; sandbox"

func (p previewResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", p.obj.ContentType)
	h.Set("Content-Disposition", "inline")
	h.Set("Content-Security-Policy", previewPolicy)
	h.Set("Cache-Control", "private, no-store")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(p.obj.Data)
	return err
}

func (s *FormService) required(f biodata.Field) bool {
	return !s.optional[f]
}

func (s *FormService) optionalFields() []biodata.Field {
	fields := make([]biodata.Field, 0, len(s.optional))
	for f := range s.optional {
		fields = append(fields, f)
	}
	return fields
}

func (s *FormService) fieldParams(f biodata.Field, value string, state *FieldState) FieldParams {
	msgs := s.validator.Messages()
	params := FieldParams{
		Field:       f,
		Label:       msgs.Label(f),
		Placeholder: msgs.Placeholder(f),
		Value:       value,
		Required:    s.required(f),
		State:       state,
		ValidateURL: s.cfg.path("/fields/" + f.String()),
	}
	if f == biodata.BirthDate {
		params.PasteURL = s.cfg.path("/fields/birthDate/paste")
	}
	return params
}

func (s *FormService) photoParams() PhotoParams {
	return PhotoParams{
		Label:     s.validator.Messages().Label(biodata.PhotoUpload),
		UploadURL: s.cfg.path("/photo"),
	}
}

func (s *FormService) notice(message string) NoticeParams {
	msgs := s.validator.Messages()
	switch message {
	case msgs.Submitted:
		return NoticeParams{Message: message, Type: "success"}
	case msgs.InvalidImage:
		return NoticeParams{Message: message, Type: "error"}
	default:
		return NoticeParams{Message: message, Type: "info"}
	}
}

func (s *FormService) pageParams(values Values, previewID string) PageParams {
	signals := make(map[string]string, len(biodata.Fields)+1)
	fields := make([]FieldParams, 0, len(biodata.Fields))
	for _, f := range biodata.Fields {
		v := values.Get(f)
		signals[f.String()] = v
		fields = append(fields, s.fieldParams(f, v, nil))
	}
	signals[previewIDSignal.String()] = previewID

	var previewURL string
	if previewID != "" {
		previewURL = s.previews.URL(previewID)
	}

	return PageParams{
		Title:             "Biodata",
		DatastarScriptURL: s.cfg.DatastarScriptURL,
		SubmitURL:         s.cfg.path("/submit"),
		Fields:            fields,
		Photo:             s.photoParams(),
		Preview:           PreviewParams{URL: previewURL},
		Signals:           signals,
	}
}
