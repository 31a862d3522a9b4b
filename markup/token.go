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
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// KindText is the kind of tokens holding text found outside of any tagged
// span.
const KindText = "text"

// spanRegexp matches a single tagged span. The closing tag must have the same
// name as the opening tag so a backreference is required. Span bodies do not
// cross line terminators.
var spanRegexp = regexp2.MustCompile(`\{([^}]+)\}([^\n\r\u2028\u2029]*?)\{/\1\}`, regexp2.None)

// Token is a single span of markup.
type Token struct {
	// Kind is the tag name of the span, or KindText for untagged text.
	Kind string

	// Content is the literal text of the span with any link target removed.
	Content string

	// Link is the hyperlink target of the span. It is only set for link
	// kinds whose body has the form TARGET|DISPLAY.
	Link string
}

// Tokenize splits the input into tokens. Tokens are returned in input order
// and text between or after tagged spans is returned as KindText tokens. An
// empty input returns no tokens.
func Tokenize(input string) []Token {
	var tokens []Token

	// NOTE: regexp2 reports match positions in runes. Text is sliced from
	// input by byte offset so that invalid UTF-8 is kept verbatim.
	offsets := runeOffsets(input)
	text := func(start, end int) string {
		return input[offsets[start]:offsets[end]]
	}
	group := func(m *regexp2.Match, n int) string {
		g := m.GroupByNumber(n)
		return text(g.Index, g.Index+g.Length)
	}

	pos := 0
	end := len(offsets) - 1

	m, err := spanRegexp.FindRunesMatch([]rune(input))
	for err == nil && m != nil {
		if m.Index > pos {
			tokens = append(tokens, Token{
				Kind:    KindText,
				Content: text(pos, m.Index),
			})
		}

		tokens = append(tokens, newToken(group(m, 1), group(m, 2)))

		pos = m.Index + m.Length
		m, err = spanRegexp.FindNextMatch(m)
	}

	// A match error leaves the remaining input as text.
	if pos < end {
		tokens = append(tokens, Token{
			Kind:    KindText,
			Content: text(pos, end),
		})
	}

	return tokens
}

// runeOffsets returns the byte offset of each rune in s, followed by len(s).
// Each invalid byte counts as one rune, as in a []rune conversion.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(offsets, len(s))
}

func newToken(kind, body string) Token {
	t := Token{
		Kind:    kind,
		Content: body,
	}
	if IsLinkKind(kind) {
		if target, display, ok := splitLink(body); ok {
			t.Link = target
			t.Content = display
		}
	}
	return t
}

// splitLink splits a link body of the form TARGET|DISPLAY at the first '|'.
// Both parts must be non-empty.
func splitLink(body string) (string, string, bool) {
	target, display, found := strings.Cut(body, "|")
	if !found || target == "" || display == "" {
		return "", "", false
	}
	return target, display, true
}

// Text returns the literal text of the tokens concatenated in order.
func Text(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Content)
	}
	return b.String()
}
