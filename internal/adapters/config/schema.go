package config

// Configfile is the structure of edgetabs.yaml. Every field is optional.
type Configfile struct {
	Version string     `yaml:"version"`
	Windows WindowsDTO `yaml:"windows"`
	Cache   CacheDTO   `yaml:"cache"`
	Results ResultsDTO `yaml:"results"`
	Desktop string     `yaml:"desktop"`
	Watch   *bool      `yaml:"watch"`
	Log     LogDTO     `yaml:"log"`
}

// WindowsDTO selects the top-level windows to enumerate.
type WindowsDTO struct {
	Class       string `yaml:"class"`
	TitleSuffix string `yaml:"titleSuffix"`
}

// CacheDTO holds the cache lifetimes as Go duration strings.
type CacheDTO struct {
	AnchorTTL         string `yaml:"anchorTTL"`
	AnchorNegativeTTL string `yaml:"anchorNegativeTTL"`
	ResultTTL         string `yaml:"resultTTL"`
	SweepInterval     string `yaml:"sweepInterval"`
}

// ResultsDTO controls the presentation of entries.
type ResultsDTO struct {
	Category     string `yaml:"category"`
	Icon         string `yaml:"icon"`
	DefaultScore *int   `yaml:"defaultScore"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
