package handler

import "net/http"

// SSEHandler sends patches over an open event stream.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render opens the event stream and runs the handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that runs handler on the request's event stream.
// Only DataStar requests are accepted; others fail with 400.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		return stream.SendMultiple(
//			handler.Patch(views.Field(f, state)),
//			handler.Patch(views.Notice(msg), handler.WithTarget("#notices")),
//		)
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
