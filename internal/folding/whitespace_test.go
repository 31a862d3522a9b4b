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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFold(t *testing.T) {
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
			name:     "only whitespace",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    "  from Latin  ",
			expected: "from Latin",
		},
		{
			name:     "internal spans",
			input:    "from\t\tLatin\n {it}etymologia{/it}",
			expected: "from Latin {it}etymologia{/it}",
		},
		{
			name:     "unicode spaces",
			input:    "ἔτυμον  λόγος",
			expected: "ἔτυμον λόγος",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Fold(test.input)); diff != "" {
				t.Fatalf("Fold(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	got := Join([]string{"a  b", " c", "", "d "})
	if diff := cmp.Diff("a b c d", got); diff != "" {
		t.Fatalf("Join (-want, +got):\n%s", diff)
	}
}
