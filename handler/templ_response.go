package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent represents a templ component interface.
// This matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch represents a component with its own rendering options
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch creates a TemplPatch with options for use with StreamContext.SendMultiple
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{
		Component: component,
		Options:   opts,
	}
}

type templResponse struct {
	component TemplComponent
	status    int
	options   []datastar.PatchElementOption
}

// Render outputs component via SSE for DataStar or HTML for regular requests
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component with optional configuration.
// For DataStar requests, it renders via SSE with optional target and patch mode.
// For regular HTTP requests, it renders directly to the response.
//
//	return handler.Templ(
//		views.Notice(msg),
//		handler.WithTarget("#notices"),
//		handler.WithPatchMode(handler.PatchAppend),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// TemplWithStatus renders component as a regular HTML response with status.
// DataStar requests still receive an SSE patch.
func TemplWithStatus(status int, component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		status:    status,
		options:   opts,
	}
}
