package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/reactor"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr      = ":8000"
	DefaultRateLimit = 20.0
	DefaultBurst     = 40
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultOrigins are the dashboard dev-server origins allowed by CORS.
var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

// Environment variables consulted by ApplyEnv.
const (
	EnvAddr           = "PFRSIM_ADDR"
	EnvAllowedOrigins = "PFRSIM_ALLOWED_ORIGINS"
	EnvLogLevel       = "PFRSIM_LOG_LEVEL"
	EnvLogFormat      = "PFRSIM_LOG_FORMAT"
	EnvIntegrator     = "PFRSIM_INTEGRATOR"
)

type Config struct {
	Integrator     string          `yaml:"integrator"`
	OperatingPoint reactor.Request `yaml:"operating_point"`
	Reactor        reactor.Params  `yaml:"reactor"`
	Server         ServerConfig    `yaml:"server"`
	Log            LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	origins := make([]string, len(DefaultOrigins))
	copy(origins, DefaultOrigins)

	return &Config{
		Integrator:     integrators.Default,
		OperatingPoint: Presets["default"].Request,
		Reactor:        reactor.DefaultParams(),
		Server: ServerConfig{
			Addr:           DefaultAddr,
			AllowedOrigins: origins,
			RateLimit:      DefaultRateLimit,
			Burst:          DefaultBurst,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a YAML or INI config file on top of the defaults. The format
// is chosen by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		file, err := ini.Load(path)
		if err != nil {
			return nil, err
		}
		if err := loadINI(cfg, file); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func loadINI(cfg *Config, file *ini.File) error {
	cfg.Integrator = file.Section("").Key("integrator").MustString(cfg.Integrator)

	rs := file.Section("reactor")
	for _, name := range reactor.ParamNames() {
		if !rs.HasKey(name) {
			continue
		}
		v, err := rs.Key(name).Float64()
		if err != nil {
			return fmt.Errorf("[reactor] %s: %w", name, err)
		}
		if err := cfg.Reactor.SetParam(name, v); err != nil {
			return err
		}
	}

	op := file.Section("operating_point")
	for key, dst := range map[string]*float64{
		"t_in":     &cfg.OperatingPoint.TIn,
		"velocity": &cfg.OperatingPoint.Velocity,
		"t_jacket": &cfg.OperatingPoint.TJacket,
	} {
		if err := iniFloat(op, key, dst); err != nil {
			return err
		}
	}

	srv := file.Section("server")
	cfg.Server.Addr = srv.Key("addr").MustString(cfg.Server.Addr)
	if srv.HasKey("allowed_origins") {
		cfg.Server.AllowedOrigins = srv.Key("allowed_origins").Strings(",")
	}
	if err := iniFloat(srv, "rate_limit", &cfg.Server.RateLimit); err != nil {
		return err
	}
	if srv.HasKey("burst") {
		v, err := srv.Key("burst").Int()
		if err != nil {
			return fmt.Errorf("[server] burst: %w", err)
		}
		cfg.Server.Burst = v
	}

	lg := file.Section("log")
	cfg.Log.Level = lg.Key("level").MustString(cfg.Log.Level)
	cfg.Log.Format = lg.Key("format").MustString(cfg.Log.Format)
	return nil
}

// iniFloat overwrites dst only when the key is present.
func iniFloat(sec *ini.Section, key string, dst *float64) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), key, err)
	}
	*dst = v
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDotEnv loads variables from each existing file into the process
// environment. Variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides server, log and integrator settings from PFRSIM_*
// variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvAllowedOrigins); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvIntegrator); v != "" {
		c.Integrator = v
	}
}

func (c *Config) Validate() error {
	if _, err := integrators.New(c.Integrator); err != nil {
		return err
	}
	if err := c.Reactor.Validate(); err != nil {
		return err
	}
	if err := c.OperatingPoint.Validate(); err != nil {
		return fmt.Errorf("operating_point: %w", err)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0, got %g", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.Burst < 1 {
		return fmt.Errorf("server.burst must be >= 1 when rate limiting, got %d", c.Server.Burst)
	}
	return nil
}
