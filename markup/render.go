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

// Style is the presentation style of an Instruction.
type Style int

const (
	// Plain is unstyled text. Unknown token kinds are rendered as Plain.
	Plain Style = iota

	// Bold is bold text.
	Bold

	// Italic is italic text.
	Italic

	// Subscript is subscript text.
	Subscript

	// Superscript is superscript text.
	Superscript

	// SmallCaps is text set in small capitals.
	SmallCaps

	// Literal is a fixed string substituted for the token.
	Literal

	// LineBreak is a hard line break.
	LineBreak

	// Group is an unstyled grouping of text such as a cross-reference.
	Group

	// Link is a hyperlink.
	Link
)

// String implements [fmt.Stringer].
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Subscript:
		return "subscript"
	case Superscript:
		return "superscript"
	case SmallCaps:
		return "small-caps"
	case Literal:
		return "literal"
	case LineBreak:
		return "line-break"
	case Group:
		return "group"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// PlaceholderHref is the link target of links without an explicit target.
const PlaceholderHref = "#"

// Instruction describes how to present a single token.
type Instruction struct {
	Style Style

	// Text is the text to present. It is empty for LineBreak.
	Text string

	// Href is the link target. It is only set for Link.
	Href string

	// Placeholder reports whether Href is PlaceholderHref because the link
	// has no explicit target.
	Placeholder bool
}

// kindStyles maps token kinds to their presentation style.
var kindStyles = map[string]Style{
	// Formatting and punctuation.
	"b":     Bold,
	"bc":    Bold,
	"inf":   Subscript,
	"it":    Italic,
	"ldquo": Literal,
	"p_br":  LineBreak,
	"rdquo": Literal,
	"sc":    SmallCaps,
	"sup":   Superscript,

	// Word-marking and gloss.
	"gloss":  Italic,
	"parahw": Bold,
	"phrase": Bold,
	"qword":  Italic,
	"wi":     Italic,

	// Date sense.
	"ds": Italic,

	// Cross-reference grouping.
	"dx":     Group,
	"dx_def": Group,
	"dx_ety": Group,
	"ma":     Group,

	// Cross-references.
	"a_link":  Link,
	"d_link":  Link,
	"dxt":     Link,
	"et_link": Link,
	"i_link":  Link,
	"mat":     Link,
	"sx":      Link,

	KindText: Plain,
}

var literals = map[string]string{
	"ldquo": "“",
	"rdquo": "”",
}

// StyleOf returns the presentation style for the token kind.
func StyleOf(kind string) Style {
	// The zero value is Plain.
	return kindStyles[kind]
}

// IsLinkKind returns whether tokens of the given kind are hyperlinks.
func IsLinkKind(kind string) bool {
	return StyleOf(kind) == Link
}

// Render returns the presentation instruction for the token.
func Render(t Token) Instruction {
	switch s := StyleOf(t.Kind); s {
	case Literal:
		return Instruction{Style: Literal, Text: literals[t.Kind]}
	case LineBreak:
		return Instruction{Style: LineBreak}
	case Link:
		if t.Link == "" {
			return Instruction{Style: Link, Text: t.Content, Href: PlaceholderHref, Placeholder: true}
		}
		return Instruction{Style: Link, Text: t.Content, Href: t.Link}
	default:
		return Instruction{Style: s, Text: t.Content}
	}
}

// RenderAll renders each token in order.
func RenderAll(tokens []Token) []Instruction {
	instrs := make([]Instruction, 0, len(tokens))
	for _, t := range tokens {
		instrs = append(instrs, Render(t))
	}
	return instrs
}

// Parse tokenizes and renders the markup string.
func Parse(s string) []Instruction {
	return RenderAll(Tokenize(s))
}
