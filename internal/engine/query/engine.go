// Package query enumerates browser tabs across windows and answers launcher queries over them.
package query

import (
	"cmp"
	"context"
	"slices"

	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/engine/anchors"
	"go.trai.ch/edgetabs/internal/engine/results"
	"go.trai.ch/edgetabs/internal/engine/tabstrip"
	"go.trai.ch/zerr"
)

// Engine ties the window source, both caches and the tab strip resolver together.
type Engine struct {
	windows  ports.WindowSource
	anchors  *anchors.Cache
	resolver *tabstrip.Resolver
	results  *results.Cache
	scorer   ports.TextScorer
	logger   ports.Logger
	tracer   ports.Tracer
	present  domain.ResultsConfig
}

// NewEngine creates a new Engine.
func NewEngine(
	windows ports.WindowSource,
	anchorCache *anchors.Cache,
	resolver *tabstrip.Resolver,
	resultCache *results.Cache,
	scorer ports.TextScorer,
	logger ports.Logger,
	tracer ports.Tracer,
	present domain.ResultsConfig,
) *Engine {
	return &Engine{
		windows:  windows,
		anchors:  anchorCache,
		resolver: resolver,
		results:  resultCache,
		scorer:   scorer,
		logger:   logger,
		tracer:   tracer,
		present:  present,
	}
}

// Query returns the entries matching search.
//
// Entries are only filtered when the query carries the action keyword and a
// non-empty search; then each entry is scored, non-positive scores are dropped
// and the rest is ordered by descending score. Otherwise every entry is returned
// with its default score.
func (e *Engine) Query(ctx context.Context, search string, hasActionKeyword bool) []domain.TabEntry {
	ctx, span := e.tracer.Start(ctx, "query")
	defer span.End()

	entries := e.Snapshot(ctx).CloneEntries()
	if !hasActionKeyword || search == "" {
		span.SetAttribute("results", len(entries))
		return entries
	}

	filtered := entries[:0]
	for _, entry := range entries {
		entry.Score = e.scorer.Score(search, entry.Title)
		if entry.Score > 0 {
			filtered = append(filtered, entry)
		}
	}
	slices.SortStableFunc(filtered, func(a, b domain.TabEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})

	span.SetAttribute("results", len(filtered))
	return filtered
}

// Snapshot returns the current result snapshot, recomputing it when it has expired.
func (e *Engine) Snapshot(ctx context.Context) domain.Snapshot {
	return e.results.GetOrCompute(ctx, e.collect)
}

// Activate focuses the entry with entryID.
//
// Entry IDs survive recomputation as long as the tab keeps its window, position
// and title, so a stale snapshotID only costs a lookup in the current snapshot.
func (e *Engine) Activate(ctx context.Context, snapshotID, entryID string) error {
	snap := e.Snapshot(ctx)
	if snapshotID != "" && snap.ID != snapshotID {
		e.logger.Debug("activating entry of replaced snapshot " + snapshotID)
	}

	entry, ok := snap.Find(entryID)
	if !ok {
		return zerr.With(domain.ErrEntryNotFound, "entry", entryID)
	}
	if err := entry.Activate(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to activate tab"), "title", entry.Title)
	}
	return nil
}

// Invalidate drops all cached anchors and the current snapshot.
func (e *Engine) Invalidate() {
	e.anchors.InvalidateAll()
	e.results.Invalidate()
}

// Sweep removes expired anchor entries and returns how many were removed.
func (e *Engine) Sweep() int {
	return e.anchors.Sweep()
}

// collect walks every browser window and builds the full entry list.
func (e *Engine) collect(ctx context.Context) []domain.TabEntry {
	ctx, span := e.tracer.Start(ctx, "results.compute")
	defer span.End()

	windows, err := e.windows.Enumerate(ctx)
	if err != nil {
		err = zerr.Wrap(err, "failed to enumerate windows")
		span.RecordError(err)
		e.logger.Error(err)
		return nil
	}
	span.SetAttribute("windows", len(windows))

	var entries []domain.TabEntry
	for _, window := range windows {
		entries = e.collectWindow(ctx, window, entries)
	}
	span.SetAttribute("tabs", len(entries))
	return entries
}

func (e *Engine) collectWindow(ctx context.Context, window domain.WindowHandle, entries []domain.TabEntry) []domain.TabEntry {
	_, span := e.tracer.Start(ctx, "window.resolve")
	defer span.End()
	span.SetAttribute("window", window.String())

	anchor := e.anchors.GetOrCreate(window)
	if !anchor.Resolved() {
		span.SetAttribute("resolved", false)
		return entries
	}

	strip, err := e.resolver.Resolve(anchor)
	if err != nil {
		e.logger.Debug("no tab strip in window " + window.String())
		span.SetAttribute("resolved", false)
		return entries
	}
	if strip.Healed {
		e.anchors.Update(window, strip.Entry)
	}
	span.SetAttribute("layout", strip.Layout.String())
	span.SetAttribute("healed", strip.Healed)

	tabs := e.resolver.Tabs(strip)
	for i, tab := range tabs {
		title := tab.Node.Name()
		entries = append(entries, domain.TabEntry{
			ID:       domain.TabID(window, i, title),
			Title:    title,
			Category: e.present.Category,
			Icon:     e.present.Icon,
			Score:    e.present.DefaultScore,
			Window:   window,
			Layout:   strip.Layout,
			Pinned:   tab.Pinned,
			Action:   tab.Node.Activate,
		})
	}
	span.SetAttribute("tabs", len(tabs))
	return entries
}
