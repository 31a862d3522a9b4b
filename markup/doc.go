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

// Package markup implements tokenizing and rendering of the inline markup
// used in Merriam-Webster dictionary entries.
//
// The markup consists of tagged spans of the form:
//
//	{TAG}BODY{/TAG}
//
// Spans are flat. A span ends at the first closing tag with the same name and
// anything nested inside it is literal content of the span. Cross-reference
// tags such as {sx} and {d_link} may carry a hyperlink target in their body
// using the form TARGET|DISPLAY.
//
// Rendering happens in two stages:
//  1. [Tokenize] splits a markup string into an ordered list of [Token]s.
//  2. [Render] maps each token to an [Instruction] describing how it should
//     be presented. Instructions can then be written as HTML, ANSI styled
//     terminal text or plain text.
//
// Neither stage returns errors. Unmatched braces and unknown tags degrade to
// plain text.
package markup
