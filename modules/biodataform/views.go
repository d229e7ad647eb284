package biodataform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/biodata/handler"
	"github.com/dmitrymomot/biodata/pkg/biodata"
)

// FieldState is the presented validation state of a field.
type FieldState struct {
	Valid   bool
	Message string
}

// FieldParams contains data for rendering one form control with its label.
type FieldParams struct {
	Field       biodata.Field
	Label       string
	Placeholder string
	Value       string
	Required    bool
	Autofocus   bool
	// State is nil while the field has not been validated; the inline error
	// node is only rendered once it has.
	State *FieldState

	ValidateURL string
	PasteURL    string
}

// PageParams contains data for rendering the full form page.
type PageParams struct {
	Title             string
	DatastarScriptURL string
	SubmitURL         string
	Fields            []FieldParams
	Photo             PhotoParams
	Preview           PreviewParams
	Notices           []NoticeParams
	// Signals seeds the datastar signal store.
	Signals map[string]string
}

// PhotoParams contains data for rendering the photo file control.
type PhotoParams struct {
	Label     string
	UploadURL string
}

// PreviewParams contains data for rendering the preview image.
type PreviewParams struct {
	URL string
}

// NoticeParams contains data for rendering a notice.
type NoticeParams struct {
	Message string
	Type    string // "success", "error", "warning", "info"
}

// Views renders the module's HTML. Any component may be replaced.
type Views struct {
	Page       func(PageParams) templ.Component
	Field      func(FieldParams) templ.Component
	Photo      func(PhotoParams) templ.Component
	Preview    func(PreviewParams) templ.Component
	Notice     func(NoticeParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews returns the built-in views.
func DefaultViews() *Views {
	return &Views{
		Page:       PageView,
		Field:      FieldView,
		Photo:      PhotoView,
		Preview:    PreviewView,
		Notice:     NoticeView,
		ErrorPage:  ErrorPageView,
		ErrorToast: ErrorToastView,
	}
}

// htmlWriter keeps the first write error so views read top to bottom.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func post(url string) string {
	return "@post(" + strconv.Quote(url) + ")"
}

// FieldView renders the wrapper of one value control. The wrapper id is
// "field-<id>" so patches replace label, control and error node together.
func FieldView(p FieldParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		id := p.Field.String()

		h.raw(`<div class="field"`)
		h.attr("id", "field-"+id)
		h.raw(`><label`)
		h.attr("for", id)
		h.raw(`>`)
		h.text(p.Label)
		h.raw(`</label>`)

		event := "data-on:input"
		if p.Field.IsSelect() {
			event = "data-on:change"
		}

		switch {
		case p.Field.IsSelect():
			h.raw(`<select`)
			controlAttrs(h, p, event)
			h.raw(`><option value="">Select</option>`)
			for _, g := range biodata.BloodGroups {
				h.raw(`<option`)
				h.attr("value", g)
				h.flag("selected", g == p.Value)
				h.raw(`>`)
				h.text(g)
				h.raw(`</option>`)
			}
			h.raw(`</select>`)
		case p.Field.IsMultiline():
			h.raw(`<textarea rows="3"`)
			controlAttrs(h, p, event)
			h.raw(`>`)
			h.text(p.Value)
			h.raw(`</textarea>`)
		default:
			h.raw(`<input`)
			h.attr("type", inputType(p.Field))
			h.attr("value", p.Value)
			controlAttrs(h, p, event)
			h.raw(`>`)
		}

		if p.State != nil {
			h.raw(`<div class="error-message" role="alert"`)
			h.attr("id", id+"-error")
			h.raw(`>`)
			if !p.State.Valid {
				h.text(p.State.Message)
			}
			h.raw(`</div>`)
		}

		h.raw(`</div>`)
		return h.err
	})
}

func controlAttrs(h *htmlWriter, p FieldParams, event string) {
	id := p.Field.String()
	h.attr("id", id)
	h.attr("name", id)
	h.attr("data-bind", id)
	if p.Placeholder != "" {
		h.attr("placeholder", p.Placeholder)
	}
	h.flag("required", p.Required)
	h.flag("autofocus", p.Autofocus)
	if p.Field == biodata.BirthDate {
		h.attr("inputmode", "numeric")
		h.attr("maxlength", "10")
		if p.PasteURL != "" {
			h.attr("data-on:paste__delay.1ms", post(p.PasteURL))
		}
	}
	if p.ValidateURL != "" {
		h.attr(event, post(p.ValidateURL))
		h.attr("data-on:blur", post(p.ValidateURL))
	}
	if p.State != nil {
		if p.State.Valid {
			h.attr("class", "input-valid")
		} else {
			h.attr("class", "input-error")
			h.attr("aria-describedby", id+"-error")
		}
		h.attr("aria-invalid", strconv.FormatBool(!p.State.Valid))
	}
}

func inputType(f biodata.Field) string {
	switch f {
	case biodata.BirthTime:
		return "time"
	case biodata.Contact:
		return "tel"
	default:
		return "text"
	}
}

// PhotoView renders the photo file control. Replacing it clears the selection.
func PhotoView(p PhotoParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<input type="file" accept="image/*"`)
		h.attr("id", biodata.PhotoUpload.String())
		h.attr("name", biodata.PhotoUpload.String())
		if p.UploadURL != "" {
			h.attr("data-on:change", "@post("+strconv.Quote(p.UploadURL)+", {contentType: 'form'})")
		}
		h.raw(`>`)
		return h.err
	})
}

// PreviewView renders the preview image. An empty URL renders it hidden.
func PreviewView(p PreviewParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<img id="preview" alt="Photo preview"`)
		if p.URL != "" {
			h.attr("src", p.URL)
		} else {
			h.raw(` hidden`)
		}
		h.raw(`>`)
		return h.err
	})
}

// NoticeView renders a one-off notice for the #notices container.
func NoticeView(p NoticeParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		kind := p.Type
		if kind == "" {
			kind = "info"
		}
		h := &htmlWriter{w: w}
		h.raw(`<div role="status"`)
		h.attr("class", "notice notice-"+kind)
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</div>`)
		return h.err
	})
}

// PageView renders the whole document.
func PageView(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(p.Title)
		h.raw(`</title>`)
		if p.DatastarScriptURL != "" {
			h.raw(`<script type="module"`)
			h.attr("src", p.DatastarScriptURL)
			h.raw(`></script>`)
		}
		h.raw(`</head><body><h1>`)
		h.text(p.Title)
		h.raw(`</h1>`)

		signals, err := json.Marshal(p.Signals)
		if err != nil {
			return fmt.Errorf("encode signals: %w", err)
		}

		h.raw(`<form id="biodataForm" method="post" enctype="multipart/form-data" novalidate`)
		h.attr("action", p.SubmitURL)
		h.attr("data-signals", string(signals))
		h.attr("data-on:submit", post(p.SubmitURL))
		h.raw(`>`)
		for _, f := range p.Fields {
			h.component(ctx, FieldView(f))
		}
		h.raw(`<div class="field" id="field-photoUpload"><label for="photoUpload">`)
		h.text(p.Photo.Label)
		h.raw(`</label>`)
		h.component(ctx, PhotoView(p.Photo))
		h.raw(`</div>`)
		h.component(ctx, PreviewView(p.Preview))
		h.raw(`<input type="hidden" name="previewId" data-bind="previewId"`)
		h.attr("value", p.Signals["previewId"])
		h.raw(`><button type="submit">Submit</button></form><div id="notices" aria-live="polite">`)
		for _, n := range p.Notices {
			h.component(ctx, NoticeView(n))
		}
		h.raw(`</div></body></html>`)
		return h.err
	})
}

// ErrorPageView renders a full error page for regular requests.
func ErrorPageView(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</title></head><body><main class="error-page"><h1>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="request-id">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		if p.RetryURL != "" {
			h.raw(`<a`)
			h.attr("href", p.RetryURL)
			h.raw(`>Try again</a>`)
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// ErrorToastView renders an error notice for datastar requests.
func ErrorToastView(p handler.ErrorToastParams) templ.Component {
	return NoticeView(NoticeParams{Message: p.Message, Type: p.Type})
}
