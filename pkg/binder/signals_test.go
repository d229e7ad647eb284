package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/binder"
)

type signalRequest struct {
	Field     string `path:"field" json:"-"`
	BirthDate string `json:"birthDate"`
	Contact   string `json:"contact"`
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/fields/birthDate", strings.NewReader(`{"birthDate":"20000520","contact":"","other":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		var result signalRequest
		require.NoError(t, binder.Signals()(req, &result))
		assert.Equal(t, "20000520", result.BirthDate)
	})

	t.Run("query parameter on GET", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"contact":"01900000000"}`}}
		req := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

		var result signalRequest
		require.NoError(t, binder.Signals()(req, &result))
		assert.Equal(t, "01900000000", result.Contact)
	})

	t.Run("plain form post is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("contact=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var result signalRequest
		assert.ErrorIs(t, binder.Signals()(req, &result), binder.ErrBinderNotApplicable)
	})

	t.Run("datastar form post is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/photo", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=abc")
		req.Header.Set("Datastar-Request", "true")

		var result signalRequest
		assert.ErrorIs(t, binder.Signals()(req, &result), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed signals", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"contact":`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		var result signalRequest
		assert.ErrorIs(t, binder.Signals()(req, &result), binder.ErrInvalidSignals)
	})
}
