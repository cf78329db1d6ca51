package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "skid-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SimulatorConfig holds settings for the process-simulation bridge client.
type SimulatorConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the bridge endpoint, e.g. "http://localhost:8700".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against the bridge. Usually loaded from
	// .secrets/simulator-api-key rather than written into config files.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for throttled or busy
	// bridge responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StoreConfig holds settings for the snapshot store.
type StoreConfig struct {
	// Dir is the base directory for results (contains skid.db and exports).
	Dir string `json:"dir" yaml:"dir"`

	// MaxList is the default maximum number of snapshots returned by list
	// queries (default 50).
	MaxList int `json:"max_list" yaml:"max_list"`
}

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Listen is the address the service binds, e.g. ":8080".
	Listen string `json:"listen" yaml:"listen"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Config groups every component configuration for the skid-engine service.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Simulator SimulatorConfig `json:"simulator" yaml:"simulator"`
	Store     StoreConfig     `json:"store" yaml:"store"`
	Design    DesignParams    `json:"design" yaml:"design"`
}

// DefaultConfig returns the development defaults: local service, local
// bridge, results/ store, reference design policy.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Simulator: SimulatorConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "skid-engine/0.1",
			},
			BaseURL:    "http://localhost:8700",
			MaxRetries: 3,
		},
		Store: StoreConfig{
			Dir:     "results",
			MaxList: 50,
		},
		Design: DefaultDesignParams(),
	}
}
