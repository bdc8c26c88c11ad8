// Package config loads edgetabs.yaml.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for cwd.
//
// The file named by EDGETABS_CONFIG wins; otherwise edgetabs.yaml is looked up from
// cwd towards the filesystem root. Without a file the defaults apply.
// EDGETABS_DESKTOP overrides the desktop snapshot path in either case.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return domain.Config{}, err
	}

	if configPath != "" {
		var file Configfile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
		if err := apply(&cfg, &file, filepath.Dir(configPath)); err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
		l.Logger.Debug("loaded configuration from " + configPath)
	}

	if desktop := os.Getenv(domain.DesktopEnvVar); desktop != "" {
		cfg.Desktop = resolvePath(cwd, desktop)
	}

	if err := validate(&cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// findConfiguration returns the configuration file for cwd, or "" when there is none.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		path := resolvePath(cwd, explicit)
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *Configfile, configDir string) error {
	if file.Windows.Class != "" {
		cfg.Windows.Class = file.Windows.Class
	}
	if file.Windows.TitleSuffix != "" {
		cfg.Windows.TitleSuffix = file.Windows.TitleSuffix
	}

	durations := []struct {
		field string
		value string
		dst   *time.Duration
	}{
		{"cache.anchorTTL", file.Cache.AnchorTTL, &cfg.Cache.AnchorTTL},
		{"cache.anchorNegativeTTL", file.Cache.AnchorNegativeTTL, &cfg.Cache.AnchorNegativeTTL},
		{"cache.resultTTL", file.Cache.ResultTTL, &cfg.Cache.ResultTTL},
		{"cache.sweepInterval", file.Cache.SweepInterval, &cfg.Cache.SweepInterval},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return zerr.With(zerr.With(domain.ErrInvalidDuration, "field", d.field), "value", d.value)
		}
		*d.dst = parsed
	}

	if file.Results.Category != "" {
		cfg.Results.Category = file.Results.Category
	}
	if file.Results.Icon != "" {
		cfg.Results.Icon = file.Results.Icon
	}
	if file.Results.DefaultScore != nil {
		cfg.Results.DefaultScore = *file.Results.DefaultScore
	}

	if file.Desktop != "" {
		cfg.Desktop = resolvePath(configDir, file.Desktop)
	}
	if file.Watch != nil {
		cfg.Watch = *file.Watch
	}

	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	cfg.Log.JSON = file.Log.JSON
	return nil
}

func validate(cfg *domain.Config) error {
	if cfg.Windows.Class == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "windows.class")
	}

	ttls := []struct {
		field string
		value time.Duration
	}{
		{"cache.anchorTTL", cfg.Cache.AnchorTTL},
		{"cache.anchorNegativeTTL", cfg.Cache.AnchorNegativeTTL},
		{"cache.resultTTL", cfg.Cache.ResultTTL},
		{"cache.sweepInterval", cfg.Cache.SweepInterval},
	}
	for _, ttl := range ttls {
		if ttl.value <= 0 {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", ttl.field), "value", ttl.value.String())
		}
	}
	return nil
}

// resolvePath makes path absolute relative to dir.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved by the caller
	content, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(content, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
