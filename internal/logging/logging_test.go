package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestNewStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	logger.Debug("too quiet")
	assert.Empty(t, buf.String())
}

func TestForComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := ForComponent(NewStructuredLogger(&buf, slog.LevelInfo), "tripstore")

	logger.Info("loaded")
	assert.Contains(t, buf.String(), "component=tripstore")
}

func TestSafeCloseWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ok := &closer{}
	SafeCloseWithLogging(ok, logger, "ok_resource")
	assert.True(t, ok.closed)
	assert.Empty(t, buf.String())

	failing := &closer{err: errors.New("boom")}
	SafeCloseWithLogging(failing, logger, "bad_resource")
	assert.True(t, failing.closed)
	assert.Contains(t, buf.String(), "bad_resource")
	assert.Contains(t, buf.String(), "boom")

	// A nil closer is a no-op, not a panic.
	SafeCloseWithLogging(nil, logger, "nil_resource")
}
