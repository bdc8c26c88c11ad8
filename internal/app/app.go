// Package app implements the application layer for edgetabs.
package app

import (
	"context"
	"io"
	"os"
	"strconv"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/edgetabs/internal/adapters/desktop"
	"go.trai.ch/edgetabs/internal/adapters/detector"
	"go.trai.ch/edgetabs/internal/adapters/jsonrpc"
	"go.trai.ch/edgetabs/internal/adapters/linear"
	"go.trai.ch/edgetabs/internal/adapters/tui"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/engine/anchors"
	"go.trai.ch/edgetabs/internal/engine/query"
	"go.trai.ch/edgetabs/internal/engine/results"
	"go.trai.ch/edgetabs/internal/engine/tabstrip"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.HostRuntime = (*App)(nil)

// configurable is implemented by loggers whose level and format follow the configuration.
type configurable interface {
	Configure(cfg domain.LogConfig) error
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	scorer       ports.TextScorer
	tracer       ports.Tracer
	watcher      ports.Watcher
	stdout       io.Writer
	stderr       io.Writer
	teaOptions   []tea.ProgramOption

	mu      sync.Mutex
	cfg     domain.Config
	desktop *desktop.Desktop
	anchors *anchors.Cache
	engine  *query.Engine
	hostCtx domain.HostContext
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	scorer ports.TextScorer,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		scorer:       scorer,
		tracer:       tracer,
		watcher:      watcher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects listings and the picker.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// boot loads the configuration and builds the engine on first use.
func (a *App) boot() (*query.Engine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine != nil {
		return a.engine, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if c, ok := a.logger.(configurable); ok {
		if err := c.Configure(cfg.Log); err != nil {
			return nil, err
		}
	}

	desk, err := desktop.Open(cfg.Desktop, cfg.Windows)
	if err != nil {
		return nil, err
	}

	anchorCache := anchors.NewCache(desk, cfg.Cache.AnchorTTL, cfg.Cache.AnchorNegativeTTL)
	a.engine = query.NewEngine(
		desk,
		anchorCache,
		tabstrip.NewResolver(desk),
		results.NewCache(cfg.Cache.ResultTTL),
		a.scorer,
		a.logger,
		a.tracer,
		cfg.Results,
	)
	a.cfg = cfg
	a.desktop = desk
	a.anchors = anchorCache
	a.logger.Debug("loaded desktop snapshot " + desk.Path())
	return a.engine, nil
}

// Init records the host context. It never fails.
func (a *App) Init(_ context.Context, hostCtx domain.HostContext) {
	a.mu.Lock()
	a.hostCtx = hostCtx
	a.mu.Unlock()
	a.logger.Info("initialized by " + hostCtx.PluginName + " " + hostCtx.Version)
}

// HostContext returns what the host sent with Init.
func (a *App) HostContext() domain.HostContext {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hostCtx
}

// Query answers one launcher query. Failures are logged and yield no entries.
func (a *App) Query(ctx context.Context, q domain.Query) []domain.TabEntry {
	engine, err := a.boot()
	if err != nil {
		a.logger.Error(err)
		return nil
	}
	return engine.Query(ctx, q.Search, q.HasActionKeyword())
}

// Activate focuses the entry of a previous query.
func (a *App) Activate(ctx context.Context, snapshotID, entryID string) error {
	engine, err := a.boot()
	if err != nil {
		return err
	}
	return engine.Activate(ctx, snapshotID, entryID)
}

// Invalidate drops every cached anchor and snapshot.
func (a *App) Invalidate() {
	a.mu.Lock()
	engine := a.engine
	a.mu.Unlock()
	if engine != nil {
		engine.Invalidate()
	}
}

// ListOptions configures List.
type ListOptions struct {
	Search  string
	Keyword string
	IDs     bool
}

// List prints the entries a host query with the same search and keyword would get.
// Without a keyword all tabs are listed grouped by window.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	engine, err := a.boot()
	if err != nil {
		return err
	}

	q := domain.Query{Search: opts.Search, ActionKeyword: opts.Keyword}
	entries := engine.Query(ctx, q.Search, q.HasActionKeyword())

	filtered := q.HasActionKeyword() && q.Search != ""
	linear.NewRenderer(a.stdout, a.stderr).Render(entries, linear.Options{
		Grouped: !filtered,
		IDs:     opts.IDs,
		Scores:  filtered,
	})
	return nil
}

// Focus activates the entry with entryID in the current snapshot.
func (a *App) Focus(ctx context.Context, entryID string) error {
	engine, err := a.boot()
	if err != nil {
		return err
	}

	snap := engine.Snapshot(ctx)
	entry, ok := snap.Find(entryID)
	if !ok {
		return zerr.With(domain.ErrEntryNotFound, "entry", entryID)
	}
	if err := engine.Activate(ctx, snap.ID, entryID); err != nil {
		return err
	}
	linear.NewRenderer(a.stdout, a.stderr).Activated(entry)
	return nil
}

// PickOptions configures Pick.
type PickOptions struct {
	Search string
	// Output is the --output flag; "linear" refuses to start the picker.
	Output string
}

// Pick runs the interactive picker and activates the chosen tab.
func (a *App) Pick(ctx context.Context, opts PickOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.Output)
	if mode != detector.ModePicker {
		return domain.ErrNotATerminal
	}

	engine, err := a.boot()
	if err != nil {
		return err
	}

	picker := tui.NewPicker(a.stderr, a.teaOptions...)
	model, err := picker.Pick(ctx, opts.Search, func(ctx context.Context, search string) []domain.TabEntry {
		return engine.Query(ctx, search, true)
	})
	if err != nil {
		return err
	}
	if model.Chosen == nil {
		return nil
	}

	chosen := *model.Chosen
	if err := engine.Activate(ctx, chosen.Snapshot, chosen.ID); err != nil {
		return err
	}
	linear.NewRenderer(a.stdout, a.stderr).Activated(chosen)
	return nil
}

// Serve runs the JSON-RPC host on in and out together with the anchor sweeper
// and, if enabled, the desktop watcher. It returns when the host disconnects or
// ctx is done.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	engine, err := a.boot()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	server := jsonrpc.NewServer(a, a.logger)
	g.Go(func() error {
		// The host going away ends the session.
		defer cancel()
		return server.Serve(ctx, in, out)
	})

	sweeper := anchors.NewSweeper(a.anchors, a.cfg.Cache.SweepInterval, func(removed int) {
		if removed > 0 {
			a.logger.Debug("swept " + strconv.Itoa(removed) + " anchor entries")
		}
	})
	g.Go(func() error {
		return sweeper.Run(ctx)
	})

	if a.cfg.Watch && a.watcher != nil {
		if err := a.watcher.Start(ctx, a.desktop.Path()); err != nil {
			a.logger.Error(err)
		} else {
			g.Go(func() error {
				a.watch(engine)
				return nil
			})
		}
	}

	a.logger.Info("serving on stdio")
	return g.Wait()
}

func (a *App) watch(engine *query.Engine) {
	for path := range a.watcher.Changes() {
		if err := a.desktop.Reload(); err != nil {
			a.logger.Error(err)
			continue
		}
		engine.Invalidate()
		a.logger.Info("reloaded " + path)
	}
}

// Close releases the watcher and flushes the tracer.
func (a *App) Close(ctx context.Context) error {
	if a.watcher != nil {
		_ = a.watcher.Stop()
	}
	if s, ok := a.tracer.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
