package biodataform

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/biodata/handler"
	"github.com/dmitrymomot/biodata/pkg/biodata"
)

type effectKind int

const (
	effectFieldState effectKind = iota
	effectFocus
	effectNotice
	effectClearSelection
	effectPreview
	effectSignal
)

type effect struct {
	kind  effectKind
	field biodata.Field
	valid bool
	text  string
}

// pagePresenter records presentation effects of one request. The recorded
// effects are replayed as datastar patches, or folded into a full page for
// requests made without datastar.
type pagePresenter struct {
	form    *FormService
	values  Values
	effects []effect
	kept    string
}

var _ biodata.PhotoPresenter = (*pagePresenter)(nil)

func (s *FormService) newPresenter(values Values) *pagePresenter {
	return &pagePresenter{form: s, values: values}
}

func (p *pagePresenter) SetFieldState(f biodata.Field, valid bool, message string) {
	p.effects = append(p.effects, effect{kind: effectFieldState, field: f, valid: valid, text: message})
}

func (p *pagePresenter) Focus(f biodata.Field) {
	p.effects = append(p.effects, effect{kind: effectFocus, field: f})
}

func (p *pagePresenter) Notify(message string) {
	p.effects = append(p.effects, effect{kind: effectNotice, text: message})
}

func (p *pagePresenter) ClearSelection(f biodata.Field) {
	p.effects = append(p.effects, effect{kind: effectClearSelection, field: f})
}

func (p *pagePresenter) ShowPreview(src string) {
	p.effects = append(p.effects, effect{kind: effectPreview, text: src})
}

// setValue rewrites the value of f in the page, as the date formatter does.
func (p *pagePresenter) setValue(f biodata.Field, value string) {
	p.values.Set(f, value)
	p.effects = append(p.effects, effect{kind: effectSignal, field: f, text: value})
}

// setPreviewID records the live preview reference in the page.
func (p *pagePresenter) setPreviewID(id string) {
	p.effects = append(p.effects, effect{kind: effectSignal, field: previewIDSignal, text: id})
}

// keepPreviewID carries the current preview into a page render without
// patching it. Used when a plain post did not replace the preview.
func (p *pagePresenter) keepPreviewID(id string) {
	p.kept = id
}

const previewIDSignal biodata.Field = "previewId"

func (p *pagePresenter) fieldParams(f biodata.Field, state *FieldState) FieldParams {
	return p.form.fieldParams(f, p.values.Get(f), state)
}

// stream replays the effects in order on the datastar event stream.
func (p *pagePresenter) stream(s handler.StreamContext) error {
	views := p.form.views
	for _, e := range p.effects {
		var err error
		switch e.kind {
		case effectFieldState:
			state := &FieldState{Valid: e.valid, Message: e.text}
			err = s.SendComponent(views.Field(p.fieldParams(e.field, state)))
		case effectFocus:
			err = s.ExecuteScript(fmt.Sprintf("document.getElementById(%q)?.focus()", e.field))
		case effectNotice:
			err = s.SendComponent(views.Notice(p.form.notice(e.text)),
				handler.WithTarget("#notices"),
				handler.WithPatchMode(handler.PatchAppend),
			)
		case effectClearSelection:
			err = s.SendComponent(views.Photo(p.form.photoParams()),
				handler.WithTarget("#"+e.field.String()),
				handler.WithPatchMode(handler.PatchReplace),
			)
		case effectPreview:
			err = s.SendComponent(views.Preview(PreviewParams{URL: e.text}))
		case effectSignal:
			err = s.SendSignals(map[string]any{e.field.String(): e.text})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// fragment renders the presented fields for a plain request.
func (p *pagePresenter) fragment() templ.Component {
	var parts []templ.Component
	for _, e := range p.effects {
		if e.kind == effectFieldState {
			state := &FieldState{Valid: e.valid, Message: e.text}
			parts = append(parts, p.form.views.Field(p.fieldParams(e.field, state)))
		}
	}
	return templ.Join(parts...)
}

// page folds the effects into a full page render.
func (p *pagePresenter) page() PageParams {
	states := make(map[biodata.Field]*FieldState)
	var focus biodata.Field
	var notices []NoticeParams
	var previewURL string
	previewID := p.kept

	for _, e := range p.effects {
		switch e.kind {
		case effectFieldState:
			states[e.field] = &FieldState{Valid: e.valid, Message: e.text}
		case effectFocus:
			focus = e.field
		case effectNotice:
			notices = append(notices, p.form.notice(e.text))
		case effectPreview:
			previewURL = e.text
		case effectSignal:
			if e.field == previewIDSignal {
				previewID = e.text
			}
		}
	}

	params := p.form.pageParams(p.values, previewID)
	for i := range params.Fields {
		f := params.Fields[i].Field
		params.Fields[i].State = states[f]
		params.Fields[i].Autofocus = f == focus
	}
	params.Notices = notices
	if previewURL != "" {
		params.Preview.URL = previewURL
	}
	return params
}
