package config

import "time"

// Config holds the full application configuration, decoded from a TOML file.
type Config struct {
	App        App
	WordPress  WordPress
	Redis      Redis
	Newsletter Newsletter
}

type App struct {
	Host string
	Port int
}

// WordPress configures the upstream REST API client. CacheTTL bounds the
// staleness window of cached responses; 60s keeps list pages fresh enough
// for a news site without hammering the upstream.
type WordPress struct {
	BaseURL  string
	Timeout  Duration
	CacheTTL Duration
}

// Redis configures the optional response cache. When Enabled is false the
// gateway runs uncached.
type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Newsletter points at the external subscription service.
type Newsletter struct {
	URL     string
	Timeout Duration
}

// Duration wraps time.Duration so values like "10s" decode from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}
