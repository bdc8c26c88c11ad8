package ports

import (
	"context"

	"go.trai.ch/edgetabs/internal/core/domain"
)

// HostRuntime is the surface the launcher host drives.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostRuntime interface {
	// Init performs one-time setup. It never fails.
	Init(ctx context.Context, hostCtx domain.HostContext)
	// Query returns the tab entries for one launcher query, possibly empty, never an error.
	Query(ctx context.Context, q domain.Query) []domain.TabEntry
	// Activate focuses the tab an entry of a previous query refers to.
	Activate(ctx context.Context, snapshotID, entryID string) error
	// Invalidate drops every cached anchor and snapshot.
	Invalidate()
}
