package logger_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/edgetabs/internal/adapters/logger"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored records into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		goldenName string
	}{
		{name: "default info", level: "", goldenName: "levels_info"},
		{name: "debug", level: "debug", goldenName: "levels_debug"},
		{name: "warn", level: "warn", goldenName: "levels_warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			if tt.level != "" {
				require.NoError(t, lg.SetLevel(tt.level))
			}

			lg.Debug("resolved window 0x10")
			lg.Info("serving on stdio")
			lg.Warn("desktop snapshot changed")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("file does not exist"), "failed to read desktop snapshot"), "failed to start")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_Stdlib(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("plain failure"))

	g := goldie.New(t)
	g.Assert(t, "error_stdlib", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(zerr.Wrap(errors.New("boom"), "failed"))

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, "boom")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestLogger_SetLevel_Invalid(t *testing.T) {
	lg, _ := newTestLogger(t)

	err := lg.SetLevel("loud")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}

func TestLogger_Configure(t *testing.T) {
	lg, buf := newTestLogger(t)

	require.NoError(t, lg.Configure(domain.LogConfig{Level: "error"}))
	lg.Warn("dropped")
	assert.Empty(t, buf.String())

	require.NoError(t, lg.Configure(domain.LogConfig{Level: "debug", JSON: true}))
	lg.Debug("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg := logger.New()
	lg.SetOutput(nil)
	assert.NotPanics(t, func() { lg.Info("to stderr") })
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	out := &lockedBuffer{}
	lg := logger.New()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Go(func() {
			if i%2 == 0 {
				lg.SetOutput(out)
			}
			lg.Info("message")
		})
	}
	wg.Wait()

	lg.SetOutput(out)
	lg.Info("message")
	assert.Contains(t, out.buf.String(), "message")
}
