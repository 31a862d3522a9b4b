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
	"html"
	"io"
	"strings"

	"github.com/k3a/html2text"
)

// WriteHTML writes the instructions to w as an HTML fragment.
func WriteHTML(w io.Writer, instrs []Instruction) error {
	var b strings.Builder
	for _, in := range instrs {
		text := html.EscapeString(in.Text)
		switch in.Style {
		case Bold:
			b.WriteString("<strong>" + text + "</strong>")
		case Italic:
			b.WriteString("<em>" + text + "</em>")
		case Subscript:
			b.WriteString("<sub>" + text + "</sub>")
		case Superscript:
			b.WriteString("<sup>" + text + "</sup>")
		case SmallCaps:
			b.WriteString(`<span style="font-variant: small-caps">` + text + "</span>")
		case LineBreak:
			b.WriteString("<br>")
		case Group:
			b.WriteString("<span>" + text + "</span>")
		case Link:
			b.WriteString(`<a href="` + html.EscapeString(in.Href) + `">` + text + "</a>")
		case Plain, Literal:
			b.WriteString(text)
		default:
			b.WriteString(text)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// HTML renders the markup string as an HTML fragment.
func HTML(s string) string {
	var b strings.Builder
	// NOTE: strings.Builder never returns an error.
	_ = WriteHTML(&b, Parse(s))
	return b.String()
}

// PlainText renders the markup string as plain text. Links are replaced by
// their display text.
func PlainText(s string) string {
	return html2text.HTML2TextWithOptions(
		HTML(s),
		html2text.WithUnixLineBreaks(),
		html2text.WithLinksInnerText(),
	)
}
