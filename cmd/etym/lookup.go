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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-etymology"
)

// words returns the words given as command arguments.
func words(c *cli.Context) ([]string, error) {
	w := etymology.Words(strings.Join(c.Args().Slice(), " "))
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: missing WORD", ErrFlagParse)
	}
	return w, nil
}

func lookupCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up word etymologies",
		ArgsUsage: "WORD...",
		Description: strings.Join([]string{
			"Looks up the etymology of each word in order. Contractions without an",
			"etymology are looked up by their expanded form.",
		}, "\n"),
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := a.format(c)
			if err != nil {
				return err
			}
			w, err := words(c)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			results := client.LookupAll(c.Context, w)
			return writeResults(c.App.Writer, results, format, a.terminal())
		},
	}
}

func exportCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Look up word etymologies and print them as a table",
		ArgsUsage: "WORD...",
		Description: strings.Join([]string{
			"Prints a pipe-delimited table of words, stems, expanded forms and raw",
			"etymology markup.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "clipboard",
				Usage: "copy the table to the clipboard instead of printing it",
			},
		},
		Action: func(c *cli.Context) error {
			w, err := words(c)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			text := etymology.Table(client.LookupAll(c.Context, w))
			if c.Bool("clipboard") {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("%w: %w", ErrClipboard, err)
				}
				a.logger.Info("table copied to clipboard", "words", len(w))
				return nil
			}

			if _, err := fmt.Fprintln(c.App.Writer, text); err != nil {
				return fmt.Errorf("%w: writing table: %w", ErrEtym, err)
			}
			return nil
		},
	}
}
