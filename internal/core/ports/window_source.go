// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/edgetabs/internal/core/domain"
)

// WindowSource enumerates the browser's top-level windows on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=window_source.go -destination=mocks/mock_window_source.go -package=mocks
type WindowSource interface {
	// Enumerate returns the currently visible windows matching the browser's window class
	// and title suffix. No ordering is guaranteed.
	Enumerate(ctx context.Context) ([]domain.WindowHandle, error)
}
