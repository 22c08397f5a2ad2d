package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the tool's global YAML configuration.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Scan       Scan       `yaml:"scan"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// HTTPClient tunes the client used to fetch live pages for DOM
// snapshot scans. Zero values fall back to defaults.
type HTTPClient struct {
	Debug            bool     `yaml:"debug"`
	RetryCount       int      `yaml:"retry_count"`
	RetryWaitTime    Duration `yaml:"retry_wait_time"`
	RetryMaxWaitTime Duration `yaml:"retry_max_wait_time"`
	Timeout          Duration `yaml:"timeout"`
	TLSVerify        *bool    `yaml:"tls_verify"`
	Proxy            string   `yaml:"proxy"`
}

// Duration accepts "30s"-style YAML values, which yaml.v2 does not
// decode into time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Scan holds scan defaults the CLI applies when flags are not given.
type Scan struct {
	AppName       string   `yaml:"app_name"`
	MinSeverity   string   `yaml:"min_severity"`
	DisabledRules []string `yaml:"disabled_rules"`
}

// ValidateConfigPath checks the path points at a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes a YAML file into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return fmt.Errorf("decoding %q: %w", configPath, err)
	}
	return nil
}

// LoadConfig reads the configuration file. A missing file is not an
// error when the path was not explicitly requested: defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}
	if configPath == "" {
		configPath = "config.yml"
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return cfg, nil
		}
	}
	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
