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

package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b\\"
)

// Terminal writes instructions as ANSI styled text.
type Terminal struct {
	hyperlinks bool

	bold   lipgloss.Style
	italic lipgloss.Style
	faint  lipgloss.Style
	link   lipgloss.Style
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalOptions)

type terminalOptions struct {
	renderer   *lipgloss.Renderer
	hyperlinks bool
}

// WithRenderer sets the lipgloss renderer used to detect the color profile
// of the output. The default renders for os.Stdout.
func WithRenderer(r *lipgloss.Renderer) TerminalOption {
	return func(o *terminalOptions) {
		o.renderer = r
	}
}

// WithHyperlinks enables OSC 8 hyperlinks for links that have a target.
func WithHyperlinks(enabled bool) TerminalOption {
	return func(o *terminalOptions) {
		o.hyperlinks = enabled
	}
}

// NewTerminal returns a new Terminal writer.
func NewTerminal(opts ...TerminalOption) *Terminal {
	o := terminalOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = lipgloss.NewRenderer(os.Stdout)
	}

	r := o.renderer
	return &Terminal{
		hyperlinks: o.hyperlinks,
		bold:       r.NewStyle().Bold(true),
		italic:     r.NewStyle().Italic(true),
		faint:      r.NewStyle().Faint(true),
		link:       r.NewStyle().Underline(true),
	}
}

// Write writes the instructions to w.
func (t *Terminal) Write(w io.Writer, instrs []Instruction) error {
	if _, err := io.WriteString(w, t.Format(instrs)); err != nil {
		return fmt.Errorf("writing terminal text: %w", err)
	}
	return nil
}

// Format returns the instructions as styled text.
func (t *Terminal) Format(instrs []Instruction) string {
	// Casers are stateful and are not shared between calls.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	for _, in := range instrs {
		switch in.Style {
		case Bold:
			b.WriteString(t.bold.Render(in.Text))
		case Italic:
			b.WriteString(t.italic.Render(in.Text))
		case Subscript, Superscript:
			b.WriteString(t.faint.Render(in.Text))
		case SmallCaps:
			b.WriteString(upper.String(in.Text))
		case LineBreak:
			b.WriteString("\n")
		case Link:
			text := t.link.Render(in.Text)
			if t.hyperlinks && !in.Placeholder {
				text = osc8Start + in.Href + osc8End + text + osc8Start + osc8End
			}
			b.WriteString(text)
		case Plain, Literal, Group:
			b.WriteString(in.Text)
		default:
			b.WriteString(in.Text)
		}
	}
	return b.String()
}

// String renders the markup string as styled text.
func (t *Terminal) String(s string) string {
	return t.Format(Parse(s))
}
