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

// Package contraction expands English contractions.
package contraction

import (
	"strings"

	"github.com/ianlewis/go-etymology/internal/index"
)

type contraction struct {
	word, expanded string
}

func (c contraction) String() string {
	return c.word
}

var apostrophes = strings.NewReplacer("\u2019", "'", "\u02bc", "'")

// compare orders contracted forms with apostrophe variants folded together.
func compare(a, b string) int {
	return strings.Compare(apostrophes.Replace(a), apostrophes.Replace(b))
}

var table = index.New(expansions, compare)

// expansions lists contracted word forms and their expanded forms.
var expansions = []contraction{
	{"can't", "cannot"},
	{"won't", "will not"},
	{"don't", "do not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"isn't", "is not"},
	{"aren't", "are not"},
	{"wasn't", "was not"},
	{"weren't", "were not"},
	{"haven't", "have not"},
	{"hasn't", "has not"},
	{"hadn't", "had not"},
	{"wouldn't", "would not"},
	{"shouldn't", "should not"},
	{"couldn't", "could not"},
	{"mightn't", "might not"},
	{"mustn't", "must not"},
	{"shan't", "shall not"},
	{"needn't", "need not"},
	{"daren't", "dare not"},
	{"oughtn't", "ought not"},
	{"ain't", "am not"},
	{"let's", "let us"},
	{"that's", "that is"},
	{"he's", "he is"},
	{"she's", "she is"},
	{"it's", "it is"},
	{"what's", "what is"},
	{"who's", "who is"},
	{"where's", "where is"},
	{"when's", "when is"},
	{"why's", "why is"},
	{"how's", "how is"},
	{"there's", "there is"},
	{"here's", "here is"},
	{"I'm", "I am"},
	{"you're", "you are"},
	{"we're", "we are"},
	{"they're", "they are"},
	{"I've", "I have"},
	{"you've", "you have"},
	{"we've", "we have"},
	{"they've", "they have"},
	{"I'd", "I would"},
	{"you'd", "you would"},
	{"he'd", "he would"},
	{"she'd", "she would"},
	{"it'd", "it would"},
	{"we'd", "we would"},
	{"they'd", "they would"},
	{"I'll", "I will"},
	{"you'll", "you will"},
	{"he'll", "he will"},
	{"she'll", "she will"},
	{"it'll", "it will"},
	{"we'll", "we will"},
	{"they'll", "they will"},
}

// Expand returns the expanded form of the contraction and whether word is a
// known contraction. Words are matched case-sensitively, and typographic
// apostrophes match the ASCII apostrophe.
func Expand(word string) (string, bool) {
	c, ok := table.Get(word)
	return c.expanded, ok
}

// Len returns the number of known contractions.
func Len() int {
	return table.Len()
}
