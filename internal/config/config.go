// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads etym configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ianlewis/go-etymology/mw"
)

// ErrConfig is a parent error for configuration errors.
var ErrConfig = errors.New("config")

// ErrInvalidFormat indicates an unknown output format.
var ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrConfig)

// Output formats.
const (
	FormatTerminal = "terminal"
	FormatHTML     = "html"
	FormatPlain    = "plain"
	FormatRaw      = "raw"
	FormatTable    = "table"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTerminal, FormatHTML, FormatPlain, FormatRaw, FormatTable}

// Config is the etym configuration.
type Config struct {
	// APIKey is the Merriam-Webster Collegiate Dictionary API key.
	APIKey string

	// BaseURL is the dictionary API base URL.
	BaseURL string

	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration

	// Format is the output format.
	Format string

	// OSC8 enables terminal hyperlinks.
	OSC8 bool

	// Trace selects the trace exporter.
	Trace string
}

// Option describes a configuration key.
type Option struct {
	Key     string
	Default any
	Usage   string
}

// Options returns the configuration keys and their defaults.
func Options() []Option {
	return []Option{
		{Key: "api_key", Default: "", Usage: "Merriam-Webster Collegiate Dictionary API key"},
		{Key: "base_url", Default: mw.DefaultBaseURL, Usage: "dictionary API base URL"},
		{Key: "timeout", Default: "0s", Usage: "HTTP request timeout"},
		{Key: "format", Default: FormatTerminal, Usage: "output format"},
		{Key: "osc8", Default: false, Usage: "enable terminal hyperlinks"},
		{Key: "trace", Default: "none", Usage: "trace exporter (none, stdout, otlp)"},
	}
}

// Load reads the configuration with precedence defaults < file < env. If
// path is empty the first config.yaml found in dirs is read. A missing
// config file is not an error.
func Load(v *viper.Viper, path string, dirs []string) (*Config, error) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, d := range dirs {
			v.AddConfigPath(d)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading config: %w", ErrConfig, err)
		}
	}

	v.SetEnvPrefix("etym")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &Config{
		APIKey:  strings.TrimSpace(v.GetString("api_key")),
		BaseURL: strings.TrimSpace(v.GetString("base_url")),
		Timeout: v.GetDuration("timeout"),
		Format:  strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		OSC8:    v.GetBool("osc8"),
		Trace:   strings.ToLower(strings.TrimSpace(v.GetString("trace"))),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrConfig, c.Timeout)
	}
	if c.BaseURL == "" {
		c.BaseURL = mw.DefaultBaseURL
	}
	return nil
}

// ValidateFormat checks that f is a supported output format.
func ValidateFormat(f string) error {
	for _, known := range Formats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidFormat, f, strings.Join(Formats, ", "))
}
