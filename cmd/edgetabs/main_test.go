package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/edgetabs/internal/adapters/fuzzy"
	"go.trai.ch/edgetabs/internal/adapters/telemetry"
	"go.trai.ch/edgetabs/internal/app"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger, *bool) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	tracer := telemetry.NewOTelTracer(noop.NewTracerProvider(), "test")

	application := app.New(loader, logger, fuzzy.NewScorer(), tracer, mocks.NewMockWatcher(ctrl)).
		WithOutput(io.Discard, io.Discard)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() { cleaned = true }, nil
	}
	return provider, loader, logger, &cleaned
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, _, cleaned := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.True(t, *cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, loader, logger, _ := newProvider(t)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, errors.New("load failed"))
	logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"query"}, io.Discard, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_AppliesOptions verifies that options reach the app before the command runs.
func TestRun_AppliesOptions(t *testing.T) {
	provider, _, logger, _ := newProvider(t)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrNotATerminal)
	})

	applied := false
	exitCode := run(context.Background(), []string{"pick", "-o", "linear"}, io.Discard, provider, func(*app.App) {
		applied = true
	})

	assert.Equal(t, 1, exitCode)
	assert.True(t, applied)
}
