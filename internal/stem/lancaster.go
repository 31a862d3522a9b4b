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

// Package stem implements the Lancaster (Paice/Husk) stemming algorithm.
package stem

import (
	"fmt"
	"strconv"
	"strings"
)

// paiceRules is the Lancaster rule table in the notation of the original
// Paice/Husk implementation. Each rule is:
//
//	ENDING[*]COUNT[APPEND](.|>)
//
// ENDING is the reversed word ending, '*' marks a rule that only applies to
// a word that has not been stemmed yet, COUNT is the number of characters to
// remove, APPEND is the string to append, '.' stops stemming and
// '>' continues stemming with the result. A COUNT of 0 protects the ending.
var paiceRules = []string{
	"ai*2.", "a*1.",
	"bb1.",
	"city3s.", "ci2>", "cn1t>",
	"dd1.", "dei3y>", "deec2ss.", "dee1.", "de2>", "dooh4>",
	"e1>",
	"feil1v.", "fi2>",
	"gni3>", "gai3y.", "ga2>", "gg1.",
	"ht*2.", "hsiug5ct.", "hsi3>",
	"i*1.", "i1y>",
	"ji1d.", "juf1s.", "ju1d.", "jo1d.", "jeh1r.", "jrev1t.", "jsim2t.", "jn1d.", "j1s.",
	"lbaifi6.", "lbai4y.", "lba3>", "lbi3.", "lib2l>", "lc1.", "lufi4y.", "luf3>", "lu2.", "lai3>", "lau3>", "la2>", "ll1.",
	"mui3.", "mu*2.", "msi3>", "mm1.",
	"nois4j>", "noix4ct.", "noi3>", "nai3>", "na2>", "nee0.", "ne2>", "nn1.",
	"pihs4>", "pp1.",
	"re2>", "rae0.", "ra2.", "ro2>", "ru2>", "rr1.", "rt1>", "rei3y>",
	"sei3y>", "sis2.", "si2>", "ssen4>", "ss0.", "suo3>", "su*2.", "s*1>", "s0.",
	"tacilp4y.", "ta2>", "tnem4>", "tne3>", "tna3>", "tpir2b.", "tpro2b.", "tcud1.", "tpmus2.", "tpec2iv.", "tulo2v.", "tsis0.", "tsi3>", "tt1.",
	"uqi3.", "ugo1.",
	"vis3j>", "vie0.", "vi2>",
	"ylb1>", "yli3y>", "ylp0.", "yl2>", "ygo1.", "yhp1.", "ymo1.", "ypo1.", "yti3>", "yte3>", "ytl2.", "yrtsi5.", "yra3>", "yro3>", "yfi3.", "ycn2t>", "yca3>",
	"zi2>", "zy1s.",
}

type rule struct {
	// suffix is the word ending the rule matches.
	suffix string

	// intact is true if the rule only applies to unstemmed words.
	intact bool

	// strip is the number of bytes to remove.
	strip int

	// append is appended after stripping.
	append string

	// cont is true if stemming continues after the rule is applied.
	cont bool
}

// protect reports whether the rule protects the ending from stemming.
func (r rule) protect() bool {
	return r.strip == 0 && r.append == ""
}

// rules indexes the rule table by the final letter of the ending.
var rules = mustParseRules(paiceRules)

func mustParseRules(table []string) map[byte][]rule {
	m := map[byte][]rule{}
	for _, s := range table {
		r, err := parseRule(s)
		if err != nil {
			panic(err)
		}
		last := r.suffix[len(r.suffix)-1]
		m[last] = append(m[last], r)
	}
	return m
}

func parseRule(s string) (rule, error) {
	var r rule

	i := strings.IndexAny(s, "*0123456789")
	if i <= 0 {
		return r, fmt.Errorf("invalid rule %q: missing ending", s)
	}
	r.suffix = reverse(s[:i])
	s = s[i:]

	if s[0] == '*' {
		r.intact = true
		s = s[1:]
	}

	j := strings.IndexFunc(s, func(c rune) bool { return c < '0' || c > '9' })
	if j < 0 {
		j = len(s)
	}
	if j == 0 {
		return r, fmt.Errorf("invalid rule %q: missing count", s)
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return r, fmt.Errorf("invalid rule %q: %w", s, err)
	}
	r.strip = n
	s = s[j:]

	switch {
	case strings.HasSuffix(s, "."):
	case strings.HasSuffix(s, ">"):
		r.cont = true
	default:
		return r, fmt.Errorf("invalid rule %q: missing terminator", s)
	}
	r.append = s[:len(s)-1]

	return r, nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Lancaster returns the Lancaster stem of the word. The word is lower-cased
// before stemming.
func Lancaster(word string) string {
	return applyRules(strings.ToLower(word), true)
}

func applyRules(word string, intact bool) string {
	for {
		if word == "" {
			return word
		}

		next, cont, ok := applyRule(word, intact)
		if !ok || !cont {
			return next
		}
		word = next
		intact = false
	}
}

// applyRule applies the first matching rule to word. It returns the new
// word, whether stemming continues and whether any rule was applied.
func applyRule(word string, intact bool) (string, bool, bool) {
	for _, r := range rules[word[len(word)-1]] {
		if r.intact && !intact {
			continue
		}
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		if r.protect() {
			return word, false, true
		}

		next := word[:len(word)-r.strip] + r.append
		if !acceptable(next) {
			continue
		}
		return next, r.cont, true
	}
	return word, false, false
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiouy", c) >= 0
}

// acceptable reports whether a stem is long enough to keep. Stems that
// start with a vowel must have at least two letters. Other stems must have at
// least three letters and contain a vowel.
func acceptable(stem string) bool {
	if stem == "" {
		return false
	}
	if isVowel(stem[0]) {
		return len(stem) > 1
	}
	return len(stem) > 2 && strings.ContainsAny(stem, "aeiouy")
}
