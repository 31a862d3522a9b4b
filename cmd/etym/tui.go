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
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-etymology/internal/tui"
)

func tuiCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Look up word etymologies interactively",
		Action: func(c *cli.Context) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			return tui.Run(c.Context, tui.Options{
				Lookup:   client.LookupAll,
				Copy:     clipboard.WriteAll,
				Terminal: a.terminal(),
			})
		},
	}
}
