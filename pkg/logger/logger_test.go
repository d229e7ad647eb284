package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/dmitrymomot/biodata/pkg/logger"
	"github.com/dmitrymomot/biodata/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "hello")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("extracts request id from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(requestid.LoggerExtractor()),
		)
		ctx := requestid.WithContext(context.Background(), "req-42")
		log.InfoContext(ctx, "context msg", logger.Field("contact"))
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, "contact", entry["field"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		expected string
		debug    bool
	}{
		{"production", logger.EnvProduction, false},
		{"prod", logger.EnvProduction, false},
		{"STAGING", logger.EnvStaging, false},
		{"development", logger.EnvDevelopment, true},
		{"anything", logger.EnvDevelopment, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithOutput(buf),
				logger.WithEnvironment(tt.env, "biodata"),
			)
			assert.Equal(t, tt.debug, log.Enabled(context.Background(), slog.LevelDebug))

			log.Info("hello")
			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), "biodata")
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	logger.SetAsDefault(log)
	slog.Info("default")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestContextExtractorsSurviveWith(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, requestid.LoggerExtractor()),
	).With(logger.Component("biodataform")).WithGroup("form")

	ctx := requestid.WithContext(context.Background(), "req-7")
	log.InfoContext(ctx, "submitted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "biodataform", entry["component"])
	form, ok := entry["form"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "req-7", form["request_id"])
}
