package query_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/core/ports/mocks"
	"go.trai.ch/edgetabs/internal/engine/anchors"
	"go.trai.ch/edgetabs/internal/engine/query"
	"go.trai.ch/edgetabs/internal/engine/results"
	"go.trai.ch/edgetabs/internal/engine/tabstrip"
	"go.uber.org/mock/gomock"
)

type harness struct {
	engine  *query.Engine
	anchors *anchors.Cache
	windows *mocks.MockWindowSource
	scorer  *mocks.MockTextScorer
	logger  *mocks.MockLogger
}

func newHarness(t *testing.T, tr *tree) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span },
	).AnyTimes()

	h := &harness{
		anchors: anchors.NewCache(tr, domain.DefaultAnchorTTL, domain.DefaultAnchorNegativeTTL),
		windows: mocks.NewMockWindowSource(ctrl),
		scorer:  mocks.NewMockTextScorer(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.engine = query.NewEngine(
		h.windows,
		h.anchors,
		tabstrip.NewResolver(tr),
		results.NewCache(domain.DefaultResultTTL),
		h.scorer,
		h.logger,
		tracer,
		domain.DefaultConfig().Results,
	)
	return h
}

func titles(entries []domain.TabEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func twoWindowTree() *tree {
	vertical, _ := verticalWindow(
		[]*node{tab("Mail"), tab("Calendar")},
		[]*node{tab("Go Docs"), tab("Issue Tracker")},
	)
	return &tree{windows: map[domain.WindowHandle]*node{
		0x100: horizontalWindow(tab("News"), tab("Go Playground"), tab("Weather")),
		0x200: vertical,
	}}
}

func TestEngine_QueryUnfiltered(t *testing.T) {
	h := newHarness(t, twoWindowTree())
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100, 0x200}, nil)

	got := h.engine.Query(t.Context(), "", false)

	assert.Equal(t, []string{"News", "Go Playground", "Weather", "Mail", "Calendar", "Go Docs", "Issue Tracker"}, titles(got))
	for _, e := range got {
		assert.Equal(t, domain.DefaultCategory, e.Category)
		assert.Equal(t, domain.DefaultIcon, e.Icon)
		assert.Equal(t, domain.DefaultScore, e.Score)
		assert.NotEmpty(t, e.ID)
	}
	assert.Equal(t, domain.LayoutHorizontal, got[0].Layout)
	assert.False(t, got[0].Pinned)
	assert.Equal(t, domain.LayoutVertical, got[3].Layout)
	assert.True(t, got[3].Pinned)
	assert.True(t, got[4].Pinned)
	assert.False(t, got[5].Pinned)
}

func TestEngine_QueryWithoutFilterConditions(t *testing.T) {
	// The scorer mock has no expectations: filtering must not run.
	h := newHarness(t, twoWindowTree())
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100}, nil)

	assert.Len(t, h.engine.Query(t.Context(), "go", false), 3, "search without keyword")
	assert.Len(t, h.engine.Query(t.Context(), "", true), 3, "keyword without search")
}

func TestEngine_QueryFiltered(t *testing.T) {
	h := newHarness(t, twoWindowTree())
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100, 0x200}, nil)

	scores := map[string]int{"Go Playground": 40, "Go Docs": 90, "Issue Tracker": 40, "News": 0, "Mail": -5}
	h.scorer.EXPECT().Score("go", gomock.Any()).DoAndReturn(func(_, title string) int {
		return scores[title]
	}).Times(7)

	got := h.engine.Query(t.Context(), "go", true)
	assert.Equal(t, []string{"Go Docs", "Go Playground", "Issue Tracker"}, titles(got), "descending score, ties keep tree order")
	assert.Equal(t, []int{90, 40, 40}, []int{got[0].Score, got[1].Score, got[2].Score})

	// The cached snapshot is untouched by scoring.
	all := h.engine.Query(t.Context(), "", false)
	require.Len(t, all, 7)
	for _, e := range all {
		assert.Equal(t, domain.DefaultScore, e.Score)
	}
}

func TestEngine_NoWindows(t *testing.T) {
	h := newHarness(t, &tree{})
	h.windows.EXPECT().Enumerate(gomock.Any()).Return(nil, nil)

	assert.Empty(t, h.engine.Query(t.Context(), "", false))
}

func TestEngine_EnumerationFailure(t *testing.T) {
	h := newHarness(t, &tree{})
	h.windows.EXPECT().Enumerate(gomock.Any()).Return(nil, errors.New("access denied"))
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "access denied")
	})

	assert.Empty(t, h.engine.Query(t.Context(), "", false))
}

func TestEngine_SkipsUnresolvableWindows(t *testing.T) {
	tr := twoWindowTree()
	tr.windows[0x300] = el("Window", el("Unrelated"))
	tr.windows[0x400] = browserWindow(el("TopContainerView"), nil)

	h := newHarness(t, tr)
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x300, 0x100, 0x400, 0x500}, nil)

	got := h.engine.Query(t.Context(), "", false)
	assert.Equal(t, []string{"News", "Go Playground", "Weather"}, titles(got))

	stored, ok := h.anchors.Peek(0x300)
	require.True(t, ok)
	assert.False(t, stored.Resolved(), "unresolvable window is negatively cached")
}

func TestEngine_ResultCacheTTL(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, twoWindowTree())
		h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100}, nil).Times(2)

		first := h.engine.Snapshot(t.Context())
		h.engine.Query(t.Context(), "", false)
		time.Sleep(domain.DefaultResultTTL / 2)
		h.engine.Query(t.Context(), "", false)
		assert.Equal(t, first.ID, h.engine.Snapshot(t.Context()).ID)

		time.Sleep(domain.DefaultResultTTL)
		second := h.engine.Snapshot(t.Context())
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Digest, second.Digest)
	})
}

func TestEngine_HealsSideContainer(t *testing.T) {
	vertical, side := verticalWindow([]*node{tab("Pinned")}, nil)
	side.flaky = 1
	tr := &tree{windows: map[domain.WindowHandle]*node{0x200: vertical}}

	h := newHarness(t, tr)
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x200}, nil)

	got := h.engine.Query(t.Context(), "", false)
	assert.Equal(t, []string{"Pinned"}, titles(got))

	stored, ok := h.anchors.Peek(0x200)
	require.True(t, ok)
	assert.Same(t, side, stored.SideContainer, "healed side container written back")
}

func TestEngine_Activate(t *testing.T) {
	one, two := tab("One"), tab("Two")
	horizontal := horizontalWindow(one, two)
	tr := &tree{windows: map[domain.WindowHandle]*node{0x100: horizontal}}

	h := newHarness(t, tr)
	h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100}, nil)

	snap := h.engine.Snapshot(t.Context())
	require.Len(t, snap.Entries, 2)

	require.NoError(t, h.engine.Activate(t.Context(), snap.ID, snap.Entries[1].ID))
	assert.Equal(t, 0, one.activated)
	assert.Equal(t, 1, two.activated)

	require.NoError(t, h.engine.Activate(t.Context(), "replaced-snapshot", snap.Entries[0].ID))
	assert.Equal(t, 1, one.activated)

	err := h.engine.Activate(t.Context(), snap.ID, "missing")
	assert.ErrorContains(t, err, domain.ErrEntryNotFound.Error())
}

func TestEngine_InvalidateAndSweep(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		tr := twoWindowTree()
		h := newHarness(t, tr)
		h.windows.EXPECT().Enumerate(gomock.Any()).Return([]domain.WindowHandle{0x100, 0x999}, nil).Times(2)

		first := h.engine.Snapshot(t.Context())
		assert.Equal(t, 2, h.anchors.Len())

		h.engine.Invalidate()
		assert.Zero(t, h.anchors.Len())
		assert.NotEqual(t, first.ID, h.engine.Snapshot(t.Context()).ID)

		time.Sleep(domain.DefaultAnchorNegativeTTL)
		assert.Equal(t, 1, h.engine.Sweep(), "only the negative entry expired")
		assert.Equal(t, 1, h.anchors.Len())
	})
}
