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
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-etymology/internal/config"
)

func renderCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render dictionary markup",
		ArgsUsage: "[MARKUP]",
		Description: strings.Join([]string{
			"Renders dictionary markup given as arguments, or read from standard",
			"input when no arguments are given.",
		}, "\n"),
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := a.format(c)
			if err != nil {
				return err
			}
			if format == config.FormatTable {
				format = config.FormatPlain
			}

			var input string
			if c.Args().Present() {
				input = strings.Join(c.Args().Slice(), " ")
			} else {
				b, err := io.ReadAll(c.App.Reader)
				if err != nil {
					return fmt.Errorf("%w: reading input: %w", ErrEtym, err)
				}
				input = strings.TrimRight(string(b), "\r\n")
			}

			if _, err := fmt.Fprintln(c.App.Writer, renderMarkup(format, a.terminal(), input)); err != nil {
				return fmt.Errorf("%w: writing output: %w", ErrEtym, err)
			}
			return nil
		},
	}
}
