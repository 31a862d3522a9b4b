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

package stem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLancaster(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"maximum":    "maxim",
		"presumably": "presum",
		"multiply":   "multiply",
		"provision":  "provid",
		"owed":       "ow",
		"ear":        "ear",
		"saying":     "say",
		"crying":     "cry",
		"string":     "string",
		"meant":      "meant",
		"cement":     "cem",
		"cats":       "cat",
		"happiness":  "happy",
		"running":    "run",
		"connexion":  "connect",
		"etymology":  "etymolog",
		"Running":    "run",
		"don't":      "don't",
		"":           "",
	}

	for word, expected := range tests {
		t.Run(word, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(expected, Lancaster(word)); diff != "" {
				t.Fatalf("Lancaster(%q) (-want, +got):\n%s", word, diff)
			}
		})
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule     string
		expected rule
	}{
		{
			rule:     "ai*2.",
			expected: rule{suffix: "ia", intact: true, strip: 2},
		},
		{
			rule:     "deec2ss.",
			expected: rule{suffix: "ceed", strip: 2, append: "ss"},
		},
		{
			rule:     "gni3>",
			expected: rule{suffix: "ing", strip: 3, cont: true},
		},
		{
			rule:     "nee0.",
			expected: rule{suffix: "een"},
		},
	}

	for _, test := range tests {
		t.Run(test.rule, func(t *testing.T) {
			t.Parallel()

			got, err := parseRule(test.rule)
			if err != nil {
				t.Fatalf("parseRule(%q): %v", test.rule, err)
			}
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(rule{})); diff != "" {
				t.Fatalf("parseRule(%q) (-want, +got):\n%s", test.rule, diff)
			}
		})
	}
}

func TestParseRule_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "2.", "ab", "ab*.", "ab2"} {
		if _, err := parseRule(s); err == nil {
			t.Errorf("parseRule(%q): expected error", s)
		}
	}
}
