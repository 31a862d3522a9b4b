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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-etymology"
	"github.com/ianlewis/go-etymology/internal/config"
	"github.com/ianlewis/go-etymology/internal/tracing"
	"github.com/ianlewis/go-etymology/markup"
	"github.com/ianlewis/go-etymology/mw"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrEtym is a parent error for all command errors.
var ErrEtym = errors.New("etym")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrEtym)

// ErrMissingAPIKey indicates that no dictionary API key was configured.
var ErrMissingAPIKey = fmt.Errorf("%w: missing API key (set --api-key or MERRIAM_WEBSTER_API_KEY)", ErrEtym)

// ErrClipboard indicates that copying to the clipboard failed.
var ErrClipboard = fmt.Errorf("%w: failed to copy to clipboard", ErrEtym)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// app holds state shared by commands. It is populated before any command
// runs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	tracing *tracing.Provider
}

func (a *app) before(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))

	cfg, err := config.Load(viper.New(), c.String("config"), configLocations())
	if err != nil {
		return err
	}
	if c.IsSet("api-key") {
		cfg.APIKey = strings.TrimSpace(c.String("api-key"))
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("osc8") {
		cfg.OSC8 = c.Bool("osc8")
	}
	if c.IsSet("trace") {
		cfg.Trace = c.String("trace")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"format", cfg.Format,
		"trace", cfg.Trace,
	)

	a.tracing, err = tracing.Setup(c.Context, tracing.Config{
		Exporter: cfg.Trace,
		Writer:   c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEtym, err)
	}
	return nil
}

func (a *app) after(c *cli.Context) error {
	if a.tracing == nil {
		return nil
	}
	return a.tracing.Shutdown(c.Context)
}

// client returns a new lookup client.
func (a *app) client() (*etymology.Client, error) {
	if a.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	p := mw.New(a.cfg.APIKey,
		mw.WithBaseURL(a.cfg.BaseURL),
		mw.WithHTTPClient(&http.Client{Timeout: a.cfg.Timeout}),
		mw.WithLogger(a.logger),
	)
	return etymology.New(p, etymology.WithLogger(a.logger)), nil
}

// terminal returns a new terminal markup writer.
func (a *app) terminal() *markup.Terminal {
	return markup.NewTerminal(markup.WithHyperlinks(a.cfg.OSC8))
}

// format returns the output format from the command's flags or the config.
func (a *app) format(c *cli.Context) (string, error) {
	if !c.IsSet("format") {
		return a.cfg.Format, nil
	}
	f := strings.ToLower(c.String("format"))
	if err := config.ValidateFormat(f); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return f, nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Usage:   "output `FORMAT` (" + strings.Join(config.Formats, ", ") + ")",
		Aliases: []string{"f"},
	}
}

func newEtymApp() *cli.App {
	a := &app{}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up English word etymologies.",
		Description: strings.Join([]string{
			"Looks up word etymologies in the Merriam-Webster Collegiate Dictionary",
			"and renders the dictionary's markup as formatted text.",
			"http://github.com/ianlewis/go-etymology",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Merriam-Webster Collegiate Dictionary API `KEY`",
				EnvVars: []string{"MERRIAM_WEBSTER_API_KEY"},
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "dictionary API base `URL`",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP request timeout",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:  "osc8",
				Usage: "print terminal hyperlinks",
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "export traces to `EXPORTER` (none, stdout, otlp)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Before:          a.before,
		After:           a.after,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			lookupCommand(a),
			exportCommand(a),
			renderCommand(a),
			tuiCommand(a),
		},
	}
}
