package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("search submitted", Field{Key: "origin", Value: "London"})

	output := buf.String()
	assert.Contains(t, output, "search submitted")
	assert.Contains(t, output, `"origin":"London"`)
	assert.Contains(t, output, `"level":"info"`)
	assert.Contains(t, output, `"service":"flightfinder"`)
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	assert.Contains(t, buf.String(), "debug-test")
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	assert.Empty(t, buf.String())
}

func TestZeroLogger_LevelIsPerLogger(t *testing.T) {
	prodBuf := &bytes.Buffer{}
	devBuf := &bytes.Buffer{}
	prod := NewWithWriter("production", prodBuf)
	dev := NewWithWriter("development", devBuf)

	prod.Debug("hidden")
	dev.Debug("shown")

	assert.Empty(t, prodBuf.String())
	assert.Contains(t, devBuf.String(), "shown")
}

func TestZeroLogger_TypedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Warn("stale completion",
		Field{Key: "seq", Value: uint64(7)},
		Field{Key: "took", Value: 1500 * time.Millisecond},
		Err(errors.New("boom")),
	)

	output := buf.String()
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"seq":7`)
	assert.Contains(t, output, `"err":"boom"`)
}

func TestZeroLogger_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("error-test")

	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("nothing", Field{Key: "k", Value: "v"})
	})
}
