package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, responseID string) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		assert.Equal(t, ctxID, respID)
		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	})

	t.Run("reuses valid id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "abc_123-XYZ")
		assert.Equal(t, "abc_123-XYZ", ctxID)
		assert.Equal(t, "abc_123-XYZ", respID)
	})

	for _, invalid := range []string{"has space", "semi;colon", "<script>", strings.Repeat("a", 129)} {
		t.Run("replaces invalid id "+invalid[:min(len(invalid), 10)], func(t *testing.T) {
			t.Parallel()
			ctxID, respID := serve(t, invalid)
			assert.NotEqual(t, invalid, ctxID)
			assert.Equal(t, ctxID, respID)
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "id-1")
	assert.Equal(t, "id-1", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "id-2"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "id-2", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
