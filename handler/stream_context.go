package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
type StreamContext interface {
	Context

	// SendComponent patches a single templ component into the page.
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendMultiple patches several components in order.
	SendMultiple(patches ...TemplPatch) error

	// SendSignals updates frontend signals.
	//
	//	err := stream.SendSignals(map[string]any{"birthDate": "2000-05-20"})
	SendSignals(signals map[string]any) error

	// ExecuteScript runs a script in the page.
	ExecuteScript(script string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, patch := range patches {
		if err := c.sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) ExecuteScript(script string) error {
	return c.sse.ExecuteScript(script)
}
