package domain

import "time"

const (
	// ConfigFileName is the name of the configuration file looked up from the working directory upwards.
	ConfigFileName = "edgetabs.yaml"

	// ConfigEnvVar points at an explicit configuration file.
	ConfigEnvVar = "EDGETABS_CONFIG"

	// DesktopEnvVar overrides the desktop snapshot file named in the configuration.
	DesktopEnvVar = "EDGETABS_DESKTOP"

	// DefaultWindowClass is the window class shared by all Chromium top-level windows.
	DefaultWindowClass = "Chrome_WidgetWin_1"

	// DefaultTitleSuffix ends the title of every Edge window. The space before "Edge" is
	// followed by a zero width space, exactly as Edge writes it.
	DefaultTitleSuffix = "- Microsoft​ Edge"

	// DefaultAnchorTTL is how long a successfully resolved anchor entry is served.
	DefaultAnchorTTL = 10 * time.Minute

	// DefaultAnchorNegativeTTL is how long a failed anchor resolution is remembered.
	DefaultAnchorNegativeTTL = time.Minute

	// DefaultResultTTL is how long a computed snapshot absorbs repeated queries.
	DefaultResultTTL = 5 * time.Second

	// DefaultSweepInterval is the period of the anchor cache sweep.
	DefaultSweepInterval = 60 * time.Second

	// DefaultWatchDebounce coalesces bursts of writes to the desktop file.
	DefaultWatchDebounce = 50 * time.Millisecond
)

// Config is the resolved application configuration.
type Config struct {
	Windows WindowFilter
	Cache   CacheConfig
	Results ResultsConfig
	Log     LogConfig
	// Desktop is the absolute path of the desktop snapshot file; empty if none is configured.
	Desktop string
	Watch   bool
}

// WindowFilter selects which top-level windows belong to the browser.
type WindowFilter struct {
	Class       string
	TitleSuffix string
}

// CacheConfig holds the TTLs of both cache tiers.
type CacheConfig struct {
	AnchorTTL         time.Duration
	AnchorNegativeTTL time.Duration
	ResultTTL         time.Duration
	SweepInterval     time.Duration
}

// ResultsConfig controls how entries are presented to the host.
type ResultsConfig struct {
	Category     string
	Icon         string
	DefaultScore int
}

// LogConfig controls the logger adapter.
type LogConfig struct {
	Level string
	JSON  bool
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		Windows: WindowFilter{
			Class:       DefaultWindowClass,
			TitleSuffix: DefaultTitleSuffix,
		},
		Cache: CacheConfig{
			AnchorTTL:         DefaultAnchorTTL,
			AnchorNegativeTTL: DefaultAnchorNegativeTTL,
			ResultTTL:         DefaultResultTTL,
			SweepInterval:     DefaultSweepInterval,
		},
		Results: ResultsConfig{
			Category:     DefaultCategory,
			Icon:         DefaultIcon,
			DefaultScore: DefaultScore,
		},
		Log: LogConfig{
			Level: "info",
		},
		Watch: true,
	}
}
