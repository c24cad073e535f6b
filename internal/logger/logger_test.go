package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/logger"
)

type LoggerTestSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func (s *LoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
}

func (s *LoggerTestSuite) decode() map[string]any {
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &entry))
	return entry
}

func (s *LoggerTestSuite) TestJSONIncludesBaseAttributes() {
	l := logger.New(logger.Config{Level: "info", Format: "json", ServiceName: "svc", Version: "1.2.3"}, s.buf)

	l.Info("hello", "item_id", 42)

	entry := s.decode()
	s.Equal("hello", entry["msg"])
	s.Equal("INFO", entry["level"])
	s.Equal("svc", entry["service"])
	s.Equal("1.2.3", entry["version"])
	s.EqualValues(42, entry["item_id"])
}

func (s *LoggerTestSuite) TestRequestIDFromContext() {
	l := logger.New(logger.Config{Format: "json"}, s.buf)
	ctx := logger.WithRequestID(context.Background(), "req-1")

	l.InfoContext(ctx, "with id")

	s.Equal("req-1", s.decode()["request_id"])
}

func (s *LoggerTestSuite) TestRequestIDSurvivesWith() {
	l := logger.New(logger.Config{Format: "json"}, s.buf).With("component", "cache")
	ctx := logger.WithRequestID(context.Background(), "req-2")

	l.WarnContext(ctx, "grouped")

	entry := s.decode()
	s.Equal("req-2", entry["request_id"])
	s.Equal("cache", entry["component"])
}

func (s *LoggerTestSuite) TestLevelFilters() {
	l := logger.New(logger.Config{Level: "warn", Format: "json"}, s.buf)

	l.Info("dropped")
	s.Empty(s.buf.String())

	l.Warn("kept")
	s.Contains(s.buf.String(), "kept")
}

func (s *LoggerTestSuite) TestTextFormat() {
	l := logger.New(logger.Config{Format: "text"}, s.buf)

	l.Info("plain", "k", "v")

	s.Contains(s.buf.String(), "msg=plain")
	s.Contains(s.buf.String(), "k=v")
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, logger.DefaultConfig().Validate())

	err := logger.Config{Level: "loud", Format: "xml"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Level")
	assert.Contains(t, err.Error(), "Format")
}

func TestRequestIDHelpers(t *testing.T) {
	_, ok := logger.RequestIDFromContext(context.Background())
	assert.False(t, ok)

	id := logger.NewRequestID()
	assert.Len(t, id, 36)

	got, ok := logger.RequestIDFromContext(logger.WithRequestID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := logger.WithRequestID(context.Background(), "req-3")

	logger.FromContext(ctx).Info("plain handler")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-3", entry["request_id"])

	buf.Reset()
	slog.SetDefault(logger.New(logger.Config{Format: "json"}, &buf))

	logger.FromContext(ctx).InfoContext(ctx, "context handler")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id"`)))
}
