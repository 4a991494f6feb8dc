// Package gstscan sequences portal scrapes into batch runs and owns the
// run outputs: data files, the tally, notifications.
package gstscan

import (
	"fmt"
	"os"
	"time"

	"gstscan-backend/lib/configutil"
	"gstscan-backend/lib/scrapers/gstportal"
	"gstscan-backend/lib/throttle"
)

type NotifyConfig struct {
	Enabled  bool     `json:"enabled"`
	SMTPHost string   `json:"smtp_host"`
	SMTPPort int      `json:"smtp_port"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Password string   `json:"password"`
}

type Config struct {
	BaseURL         string       `json:"base_url"`
	TimeoutSeconds  int          `json:"timeout_seconds"`
	MaxRetries      int          `json:"max_retries"`
	DelayMinSeconds float64      `json:"delay_min_seconds"`
	DelayMaxSeconds float64      `json:"delay_max_seconds"`
	RotateUserAgent bool         `json:"rotate_user_agent"`
	DemoMode        bool         `json:"demo_mode"`
	OutputFormat    string       `json:"output_format"` // csv | json | both
	OutputDir       string       `json:"output_dir"`
	Debug           bool         `json:"debug"`
	Notify          NotifyConfig `json:"notify"`
}

func (c *Config) applyDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.DelayMinSeconds <= 0 {
		c.DelayMinSeconds = 2
	}
	if c.DelayMaxSeconds < c.DelayMinSeconds {
		c.DelayMaxSeconds = c.DelayMinSeconds + 2
	}
	if c.OutputFormat == "" {
		c.OutputFormat = "csv"
	}
	if c.OutputDir == "" {
		c.OutputDir = "data"
	}
}

// LoadConfig reads config.json5 (with local overrides) from the cwd. A
// missing file yields the defaults. DEMO_MODE in the environment
// overrides the file.
func LoadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	cfg.applyDefaults()
	cfg.DemoMode = configutil.EnvBool("DEMO_MODE", cfg.DemoMode)
	return cfg, nil
}

// Service owns one scraper session plus the run configuration. Batches
// run strictly sequentially on it.
type Service struct {
	cfg    Config
	client *gstportal.Client

	// injected in tests
	sleep throttle.Func
	now   func() time.Time
}

func New(cfg Config) (*Service, error) {
	cfg.applyDefaults()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	client, err := gstportal.NewClient(gstportal.ClientOptions{
		BaseURL:         cfg.BaseURL,
		Timeout:         time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries:      cfg.MaxRetries,
		RotateUserAgent: cfg.RotateUserAgent,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:    cfg,
		client: client,
		sleep:  throttle.Delay,
		now:    time.Now,
	}, nil
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) delayWindow() (time.Duration, time.Duration) {
	min := time.Duration(s.cfg.DelayMinSeconds * float64(time.Second))
	max := time.Duration(s.cfg.DelayMaxSeconds * float64(time.Second))
	return min, max
}
