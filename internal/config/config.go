package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// DictionaryConfig holds pronunciation dictionary settings.
type DictionaryConfig struct {
	// Source is an http(s) URL or a local path (optionally file://).
	Source        string        `yaml:"source"         env:"DICT_SOURCE"         env-default:"https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"  env:"DICT_FETCH_TIMEOUT"  env-default:"10s"`
	MaxBytes      int64         `yaml:"max_bytes"      env:"DICT_MAX_BYTES"      env-default:"10485760"`
	RetryAfter    time.Duration `yaml:"retry_after"    env:"DICT_RETRY_AFTER"    env-default:"1m"`
	// LazyLoad skips the startup preload; the first request loads instead.
	LazyLoad      bool          `yaml:"lazy_load"      env:"DICT_LAZY_LOAD"      env-default:"false"`
	Watch         bool          `yaml:"watch"          env:"DICT_WATCH"          env-default:"false"`
	WatchDebounce time.Duration `yaml:"watch_debounce" env:"DICT_WATCH_DEBOUNCE" env-default:"500ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
