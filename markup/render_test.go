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

package markup_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-etymology/markup"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    markup.Token
		expected markup.Instruction
	}{
		{
			name:     "text",
			token:    markup.Token{Kind: markup.KindText, Content: "from"},
			expected: markup.Instruction{Style: markup.Plain, Text: "from"},
		},
		{
			name:     "unknown",
			token:    markup.Token{Kind: "zzz", Content: "foo"},
			expected: markup.Instruction{Style: markup.Plain, Text: "foo"},
		},
		{
			name:     "bold",
			token:    markup.Token{Kind: "bc", Content: ":"},
			expected: markup.Instruction{Style: markup.Bold, Text: ":"},
		},
		{
			name:     "italic",
			token:    markup.Token{Kind: "ds", Content: "1a"},
			expected: markup.Instruction{Style: markup.Italic, Text: "1a"},
		},
		{
			name:     "subscript",
			token:    markup.Token{Kind: "inf", Content: "2"},
			expected: markup.Instruction{Style: markup.Subscript, Text: "2"},
		},
		{
			name:     "superscript",
			token:    markup.Token{Kind: "sup", Content: "3"},
			expected: markup.Instruction{Style: markup.Superscript, Text: "3"},
		},
		{
			name:     "small caps",
			token:    markup.Token{Kind: "sc", Content: "see"},
			expected: markup.Instruction{Style: markup.SmallCaps, Text: "see"},
		},
		{
			name:     "left quote ignores content",
			token:    markup.Token{Kind: "ldquo", Content: "ignored"},
			expected: markup.Instruction{Style: markup.Literal, Text: "“"},
		},
		{
			name:     "right quote",
			token:    markup.Token{Kind: "rdquo"},
			expected: markup.Instruction{Style: markup.Literal, Text: "”"},
		},
		{
			name:     "line break ignores content",
			token:    markup.Token{Kind: "p_br", Content: "ignored"},
			expected: markup.Instruction{Style: markup.LineBreak},
		},
		{
			name:     "group",
			token:    markup.Token{Kind: "dx_ety", Content: "more at"},
			expected: markup.Instruction{Style: markup.Group, Text: "more at"},
		},
		{
			name:     "link",
			token:    markup.Token{Kind: "sx", Content: "feline", Link: "cat"},
			expected: markup.Instruction{Style: markup.Link, Text: "feline", Href: "cat"},
		},
		{
			name:     "link placeholder",
			token:    markup.Token{Kind: "a_link", Content: "cat"},
			expected: markup.Instruction{Style: markup.Link, Text: "cat", Href: markup.PlaceholderHref, Placeholder: true},
		},
		{
			name:     "link to hash",
			token:    markup.Token{Kind: "sx", Content: "hash", Link: "#"},
			expected: markup.Instruction{Style: markup.Link, Text: "hash", Href: "#"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, markup.Render(test.token)); diff != "" {
				t.Fatalf("Render(%#v) (-want, +got):\n%s", test.token, diff)
			}
		})
	}
}

// TestRender_Kinds checks every known kind against its presentation.
func TestRender_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     string
		expected markup.Instruction
	}{
		// Bold.
		{kind: "b", expected: markup.Instruction{Style: markup.Bold, Text: "body"}},
		{kind: "bc", expected: markup.Instruction{Style: markup.Bold, Text: "body"}},
		{kind: "parahw", expected: markup.Instruction{Style: markup.Bold, Text: "body"}},
		{kind: "phrase", expected: markup.Instruction{Style: markup.Bold, Text: "body"}},

		// Italic.
		{kind: "it", expected: markup.Instruction{Style: markup.Italic, Text: "body"}},
		{kind: "gloss", expected: markup.Instruction{Style: markup.Italic, Text: "body"}},
		{kind: "qword", expected: markup.Instruction{Style: markup.Italic, Text: "body"}},
		{kind: "wi", expected: markup.Instruction{Style: markup.Italic, Text: "body"}},
		{kind: "ds", expected: markup.Instruction{Style: markup.Italic, Text: "body"}},

		{kind: "inf", expected: markup.Instruction{Style: markup.Subscript, Text: "body"}},
		{kind: "sup", expected: markup.Instruction{Style: markup.Superscript, Text: "body"}},
		{kind: "sc", expected: markup.Instruction{Style: markup.SmallCaps, Text: "body"}},

		{kind: "ldquo", expected: markup.Instruction{Style: markup.Literal, Text: "\u201c"}},
		{kind: "rdquo", expected: markup.Instruction{Style: markup.Literal, Text: "\u201d"}},
		{kind: "p_br", expected: markup.Instruction{Style: markup.LineBreak}},

		// Groups.
		{kind: "dx", expected: markup.Instruction{Style: markup.Group, Text: "body"}},
		{kind: "dx_def", expected: markup.Instruction{Style: markup.Group, Text: "body"}},
		{kind: "dx_ety", expected: markup.Instruction{Style: markup.Group, Text: "body"}},
		{kind: "ma", expected: markup.Instruction{Style: markup.Group, Text: "body"}},

		// Links.
		{kind: "a_link", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "d_link", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "dxt", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "et_link", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "i_link", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "mat", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},
		{kind: "sx", expected: markup.Instruction{Style: markup.Link, Text: "display", Href: "target"}},

		{kind: markup.KindText, expected: markup.Instruction{Style: markup.Plain, Text: "body"}},
	}

	for _, test := range tests {
		t.Run(test.kind, func(t *testing.T) {
			t.Parallel()

			body := "body"
			if markup.IsLinkKind(test.kind) {
				body = "target|display"
			}
			input := "{" + test.kind + "}" + body + "{/" + test.kind + "}"
			if test.kind == markup.KindText {
				input = body
			}

			got := markup.Parse(input)
			if diff := cmp.Diff([]markup.Instruction{test.expected}, got); diff != "" {
				t.Fatalf("Parse(%q) (-want, +got):\n%s", input, diff)
			}
		})
	}
}

func TestIsLinkKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"a_link", "d_link", "dxt", "et_link", "i_link", "mat", "sx"} {
		if !markup.IsLinkKind(kind) {
			t.Errorf("IsLinkKind(%q): want true", kind)
		}
	}
	for _, kind := range []string{"text", "b", "dx", "ma", "zzz", "SX"} {
		if markup.IsLinkKind(kind) {
			t.Errorf("IsLinkKind(%q): want false", kind)
		}
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "styles",
			input:    "{b}a{/b}{it}b{/it}{inf}c{/inf}{sup}d{/sup}{sc}e{/sc}",
			expected: `<strong>a</strong><em>b</em><sub>c</sub><sup>d</sup><span style="font-variant: small-caps">e</span>`,
		},
		{
			name:     "quotes and break",
			input:    "{ldquo}{/ldquo}x{rdquo}{/rdquo}{p_br}{/p_br}y",
			expected: "“x”<br>y",
		},
		{
			name:     "links",
			input:    "{dx}see {dxt}cat|feline{/dxt}{/dx} {sx}dog|canine{/sx} {et_link}fox{/et_link}",
			expected: `<span>see {dxt}cat|feline{/dxt}</span> <a href="dog">canine</a> <a href="#">fox</a>`,
		},
		{
			name:     "escaped",
			input:    `a < b {it}"c" & d{/it}`,
			expected: `a &lt; b <em>&#34;c&#34; &amp; d</em>`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, markup.HTML(test.input)); diff != "" {
				t.Fatalf("HTML(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "styles",
			input:    "from Latin {it}etymologia{/it}",
			expected: "from Latin etymologia",
		},
		{
			name:     "quotes",
			input:    "{ldquo}{/ldquo}true{rdquo}{/rdquo}",
			expected: "“true”",
		},
		{
			name:     "unknown kind",
			input:    "{zzz}foo{/zzz}",
			expected: "foo",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, markup.PlainText(test.input)); diff != "" {
				t.Fatalf("PlainText(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		hyperlinks bool
		expected   string
	}{
		{
			name:     "styles without color",
			input:    "{b}a{/b} {it}b{/it} {sup}c{/sup}",
			expected: "a b c",
		},
		{
			name:     "small caps",
			input:    "{sc}see{/sc} {dx_ety}x{/dx_ety}",
			expected: "SEE x",
		},
		{
			name:     "line break",
			input:    "a{p_br}{/p_br}b",
			expected: "a\nb",
		},
		{
			name:     "link without hyperlinks",
			input:    "{sx}cat|feline{/sx}",
			expected: "feline",
		},
		{
			name:       "hyperlink",
			input:      "{sx}cat|feline{/sx}",
			hyperlinks: true,
			expected:   "\x1b]8;;cat\x1b\\feline\x1b]8;;\x1b\\",
		},
		{
			name:       "placeholder is not a hyperlink",
			input:      "{sx}cat{/sx}",
			hyperlinks: true,
			expected:   "cat",
		},
		{
			name:       "hash target is a hyperlink",
			input:      "{sx}#|hash{/sx}",
			hyperlinks: true,
			expected:   "\x1b]8;;#\x1b\\hash\x1b]8;;\x1b\\",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			term := markup.NewTerminal(
				markup.WithRenderer(lipgloss.NewRenderer(io.Discard)),
				markup.WithHyperlinks(test.hyperlinks),
			)

			var b bytes.Buffer
			if err := term.Write(&b, markup.Parse(test.input)); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if diff := cmp.Diff(test.expected, b.String()); diff != "" {
				t.Fatalf("Terminal.Write(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}
