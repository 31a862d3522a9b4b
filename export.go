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

package etymology

import (
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-etymology/internal/stem"
)

const tableHeader = "| Word | Stem | Expanded Form | Etymology |\n|------|------|---------------|-----------|"

// Stem returns the stem of the word.
func Stem(word string) string {
	return stem.Lancaster(word)
}

// WriteTable writes the results to w as a pipe-delimited text table. The
// etymology column holds the raw etymology markup, or the error message for
// words that were not found.
func WriteTable(w io.Writer, results []Result) error {
	if _, err := io.WriteString(w, Table(results)); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

// Table returns the results as a pipe-delimited text table. The header is
// always followed by a newline, even when there are no rows.
func Table(results []Result) string {
	rows := make([]string, 0, len(results))
	for _, r := range results {
		var expanded, etymology string
		switch r := r.(type) {
		case *Found:
			expanded = r.ExpandedForm
			etymology = r.Etymology
		case *NotFound:
			etymology = r.Message()
		}

		word := r.Query()
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s |", word, Stem(word), expanded, etymology))
	}
	return tableHeader + "\n" + strings.Join(rows, "\n")
}
