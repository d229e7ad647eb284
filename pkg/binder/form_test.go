package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/binder"
)

type profileValues struct {
	FullName string `form:"fullName"`
	Contact  string `form:"contact"`
}

type photoRequest struct {
	profileValues
	PreviewID string                `form:"previewId"`
	Photo     *multipart.FileHeader `file:"photoUpload"`
	Skipped   string                `form:"-"`
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"fullName":  {"  Jane Doe "},
		"contact":   {"01900000000"},
		"previewId": {"abc"},
		"Skipped":   {"x"},
	}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result photoRequest
	require.NoError(t, binder.Form()(req, &result))

	assert.Equal(t, "  Jane Doe ", result.FullName, "values are bound untrimmed")
	assert.Equal(t, "01900000000", result.Contact)
	assert.Equal(t, "abc", result.PreviewID)
	assert.Empty(t, result.Skipped)
	assert.Nil(t, result.Photo)
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("previewId", "old"))
	part, err := w.CreateFormFile("photoUpload", "../../me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/photo", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result photoRequest
	require.NoError(t, binder.FormWithMaxMemory(1<<20)(req, &result))

	assert.Equal(t, "old", result.PreviewID)
	require.NotNil(t, result.Photo)
	assert.Equal(t, "me.png", result.Photo.Filename)
}

func TestForm_NotApplicable(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var result photoRequest
		assert.ErrorIs(t, binder.Form()(req, &result), binder.ErrBinderNotApplicable)
	})

	t.Run("no content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)

		var result photoRequest
		assert.ErrorIs(t, binder.Form()(req, &result), binder.ErrBinderNotApplicable)
	})
}

func TestForm_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		var result photoRequest
		assert.ErrorIs(t, binder.Form()(req, &result), binder.ErrInvalidForm)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var s string
		assert.ErrorIs(t, binder.Form()(req, &s), binder.ErrInvalidForm)
	})
}

func TestForm_RepeatedValues(t *testing.T) {
	t.Parallel()

	type request struct {
		Address  string   `form:"presentAddress"`
		Optional []string `form:"optional"`
		Agree    bool     `form:"agree"`
	}

	form := url.Values{
		"presentAddress": {"House 12, Road 5, Dhanmondi"},
		"optional":       {"caste", "religion"},
		"agree":          {"on"},
	}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result request
	require.NoError(t, binder.Form()(req, &result))

	assert.Equal(t, "House 12, Road 5, Dhanmondi", result.Address)
	assert.Equal(t, []string{"caste", "religion"}, result.Optional)
	assert.True(t, result.Agree)
}
