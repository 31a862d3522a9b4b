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
	"html"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-etymology"
	"github.com/ianlewis/go-etymology/internal/config"
	"github.com/ianlewis/go-etymology/markup"
)

// renderMarkup renders etymology markup in the given format.
func renderMarkup(format string, term *markup.Terminal, s string) string {
	switch format {
	case config.FormatHTML:
		return markup.HTML(s)
	case config.FormatPlain, config.FormatTable:
		return markup.PlainText(s)
	case config.FormatRaw:
		return s
	default:
		return term.String(s)
	}
}

// writeResults writes the lookup results to w in the given format.
func writeResults(w io.Writer, results []etymology.Result, format string, term *markup.Terminal) error {
	var out string
	switch format {
	case config.FormatTable:
		return writeSummary(w, results)
	case config.FormatHTML:
		out = resultsHTML(results)
	default:
		out = resultsText(results, format, term)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("%w: writing results: %w", ErrEtym, err)
	}
	return nil
}

func resultsText(results []etymology.Result, format string, term *markup.Terminal) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}

		word := r.Query()
		fmt.Fprintf(&b, "%s\nStem: %s\n", word, etymology.Stem(word))

		switch r := r.(type) {
		case *etymology.Found:
			if r.ExpandedForm != "" {
				fmt.Fprintf(&b, "Expanded form: %s\n", r.ExpandedForm)
			}
			b.WriteString(renderMarkup(format, term, r.Etymology))
			b.WriteString("\n")
		case *etymology.NotFound:
			b.WriteString(r.Message())
			b.WriteString("\n")
			if len(r.Suggestions) > 0 {
				fmt.Fprintf(&b, "Did you mean: %s\n", strings.Join(r.Suggestions, ", "))
			}
		}
	}
	return b.String()
}

func resultsHTML(results []etymology.Result) string {
	var b strings.Builder
	for _, r := range results {
		word := r.Query()

		b.WriteString(`<div class="result">` + "\n")
		fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(word))
		fmt.Fprintf(&b, `<p class="stem">Stem: %s</p>`+"\n", html.EscapeString(etymology.Stem(word)))

		switch r := r.(type) {
		case *etymology.Found:
			if r.ExpandedForm != "" {
				fmt.Fprintf(&b, `<p class="expanded">Expanded form: %s</p>`+"\n", html.EscapeString(r.ExpandedForm))
			}
			fmt.Fprintf(&b, "<div>%s</div>\n", markup.HTML(r.Etymology))
		case *etymology.NotFound:
			fmt.Fprintf(&b, `<p class="error">%s</p>`+"\n", html.EscapeString(r.Message()))
		}

		b.WriteString("</div>\n")
	}
	return b.String()
}

// writeSummary writes the results as an aligned table.
func writeSummary(w io.Writer, results []etymology.Result) error {
	tbl := table.New("Word", "Stem", "Expanded Form", "Etymology").WithWriter(w)
	for _, r := range results {
		word := r.Query()

		var expanded, text string
		switch r := r.(type) {
		case *etymology.Found:
			expanded = r.ExpandedForm
			text = markup.PlainText(r.Etymology)
		case *etymology.NotFound:
			text = r.Message()
		}
		tbl.AddRow(word, etymology.Stem(word), expanded, text)
	}
	tbl.Print()
	return nil
}
