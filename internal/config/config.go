package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	News struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"news"`
	Email struct {
		SMTPServer string `yaml:"smtp_server"`
		SMTPPort   int    `yaml:"smtp_port"`
		SMTPUser   string `yaml:"smtp_user"`
		SMTPPass   string `yaml:"smtp_pass"`
		From       string `yaml:"from"`
	} `yaml:"email"`
	Alert struct {
		CheckCron string `yaml:"check_cron"`
	} `yaml:"alert"`
	Report struct {
		Dir string `yaml:"dir"`
	} `yaml:"report"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; everything has a default or is optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("SMTP_SERVER"); v != "" {
		cfg.Email.SMTPServer = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Email.SMTPUser = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.Email.SMTPPass = v
	}
	if v := os.Getenv("ALERT_CRON"); v != "" {
		cfg.Alert.CheckCron = v
	}
	if v := os.Getenv("REPORT_DIR"); v != "" {
		cfg.Report.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8501"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.SMTPUser
	}
	if cfg.Alert.CheckCron == "" {
		// every 5 minutes
		cfg.Alert.CheckCron = "0 */5 * * * *"
	}
	if cfg.Report.Dir == "" {
		cfg.Report.Dir = "."
	}

	return cfg, nil
}

// Validate checks the fields that would otherwise only fail at an awkward
// moment later.
func (c *Config) Validate() error {
	if c.Email.SMTPPort <= 0 || c.Email.SMTPPort > 65535 {
		return fmt.Errorf("email.smtp_port out of range: %d", c.Email.SMTPPort)
	}
	if c.Alert.CheckCron == "" {
		return fmt.Errorf("alert.check_cron is required")
	}
	return nil
}

// EmailReady reports whether enough SMTP settings are present to send alerts.
func (c *Config) EmailReady() bool {
	return c.Email.SMTPServer != "" && c.Email.SMTPUser != "" && c.Email.SMTPPass != ""
}
