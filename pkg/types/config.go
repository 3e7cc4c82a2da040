package types

import "time"

// HTTPConfig holds settings for outbound suggestion requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout (default 5s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// InsecureSkipVerify disables TLS certificate verification. Suggestion
	// endpoints have historically been queried this way, so it defaults on.
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// Retries is the number of retries on HTTP 429. Zero means one attempt.
	Retries int `json:"retries" yaml:"retries" mapstructure:"retries"`
}

// ExpandConfig holds settings for the expansion stage.
type ExpandConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Service names the suggestion source: google, youtube, bing, yahoo, amazon, ebay.
	Service string `json:"service" yaml:"service" mapstructure:"service"`

	// Deep enables recursive re-querying of discovered terms.
	Deep bool `json:"deep" yaml:"deep" mapstructure:"deep"`

	// MaxSize caps the suggestion set in deep mode (default 1000).
	MaxSize int `json:"max_size" yaml:"max_size" mapstructure:"max_size"`

	// MaxDeepQueries caps the number of deep-mode requests (0 = unbounded).
	MaxDeepQueries int `json:"max_deep_queries" yaml:"max_deep_queries" mapstructure:"max_deep_queries"`

	// Delay is the pause between consecutive requests (default 0).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Dir is the directory for CSV exports (default ".").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// CSV enables the CSV export.
	CSV bool `json:"csv" yaml:"csv" mapstructure:"csv"`
}

// StoreConfig locates the optional run history database.
type StoreConfig struct {
	// Path is the SQLite file; empty disables persistence.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ServerConfig holds dashboard settings.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is "stderr", "stdout", or a file path (default stderr).
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}
