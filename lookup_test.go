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

package etymology_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-etymology"
	"github.com/ianlewis/go-etymology/mw"
)

var errTransport = errors.New("transport failed")

// fakeProvider returns canned responses by word and records queries.
type fakeProvider struct {
	responses map[string]*mw.Response
	errs      map[string]error
	queries   []string
}

func (p *fakeProvider) Entries(_ context.Context, word string) (*mw.Response, error) {
	p.queries = append(p.queries, word)
	if err, ok := p.errs[word]; ok {
		return nil, err
	}
	if r, ok := p.responses[word]; ok {
		return r, nil
	}
	return &mw.Response{}, nil
}

func response(t *testing.T, body string) *mw.Response {
	t.Helper()

	r, err := mw.ParseResponse([]byte(body))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	return r
}

func TestClient_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		word      string
		responses map[string]string
		errs      map[string]error
		expected  etymology.Result
		queries   []string
	}{
		{
			name: "found",
			word: "cat",
			responses: map[string]string{
				"cat": `[{"et": [["text", "Middle English {it}cat{/it}"]]}]`,
			},
			expected: &etymology.Found{Word: "cat", Etymology: "Middle English {it}cat{/it}"},
			queries:  []string{"cat"},
		},
		{
			name: "contraction fallback",
			word: "don't",
			responses: map[string]string{
				"don't":  `[{"meta": {"id": "don't"}}]`,
				"do not": `[{"et": [["text", "{it}do{/it} + {it}not{/it}"]]}]`,
			},
			expected: &etymology.Found{Word: "don't", Etymology: "{it}do{/it} + {it}not{/it}", ExpandedForm: "do not"},
			queries:  []string{"don't", "do not"},
		},
		{
			name: "contraction fallback after error",
			word: "can't",
			errs: map[string]error{
				"can't": errTransport,
			},
			responses: map[string]string{
				"cannot": `[{"et": [["text", "from {it}can{/it}"]]}]`,
			},
			expected: &etymology.Found{Word: "can't", Etymology: "from {it}can{/it}", ExpandedForm: "cannot"},
			queries:  []string{"can't", "cannot"},
		},
		{
			name: "contraction not looked up when found",
			word: "won't",
			responses: map[string]string{
				"won't": `[{"et": [["text", "contraction of {it}wol not{/it}"]]}]`,
			},
			expected: &etymology.Found{Word: "won't", Etymology: "contraction of {it}wol not{/it}"},
			queries:  []string{"won't"},
		},
		{
			name: "contraction fallback fails",
			word: "isn't",
			errs: map[string]error{
				"is not": errTransport,
			},
			expected: &etymology.NotFound{Word: "isn't", Err: errTransport},
			queries:  []string{"isn't", "is not"},
		},
		{
			name: "contraction fallback has no etymology",
			word: "it's",
			responses: map[string]string{
				"it is": `["it", "its"]`,
			},
			expected: &etymology.NotFound{Word: "it's", Err: etymology.ErrNoEtymology, Suggestions: []string{"it", "its"}},
			queries:  []string{"it's", "it is"},
		},
		{
			name: "no etymology",
			word: "xyzzy",
			responses: map[string]string{
				"xyzzy": `["fuzzy"]`,
			},
			expected: &etymology.NotFound{Word: "xyzzy", Err: etymology.ErrNoEtymology, Suggestions: []string{"fuzzy"}},
			queries:  []string{"xyzzy"},
		},
		{
			name: "error",
			word: "xyzzy",
			errs: map[string]error{
				"xyzzy": errTransport,
			},
			expected: &etymology.NotFound{Word: "xyzzy", Err: errTransport},
			queries:  []string{"xyzzy"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			p := &fakeProvider{
				responses: map[string]*mw.Response{},
				errs:      test.errs,
			}
			for word, body := range test.responses {
				p.responses[word] = response(t, body)
			}

			got := etymology.New(p).Lookup(context.Background(), test.word)
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Lookup(%q) (-want, +got):\n%s", test.word, diff)
			}
			if diff := cmp.Diff(test.queries, p.queries); diff != "" {
				t.Errorf("queries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestClient_LookupAll(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{
		responses: map[string]*mw.Response{
			"cat": response(t, `[{"et": [["text", "from {it}catt{/it}"]]}]`),
			"dog": response(t, `[{"et": [["text", "from {it}docga{/it}"]]}]`),
		},
		errs: map[string]error{
			"xyzzy": errTransport,
		},
	}

	words := etymology.Words("Cat  xyzzy\n\tDOG ")
	results := etymology.New(p).LookupAll(context.Background(), words)

	expected := []etymology.Result{
		&etymology.Found{Word: "cat", Etymology: "from {it}catt{/it}"},
		&etymology.NotFound{Word: "xyzzy", Err: errTransport},
		&etymology.Found{Word: "dog", Etymology: "from {it}docga{/it}"},
	}
	if diff := cmp.Diff(expected, results, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("LookupAll (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cat", "xyzzy", "dog"}, p.queries); diff != "" {
		t.Errorf("queries (-want, +got):\n%s", diff)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"":                   {},
		"   ":                {},
		"Can't  stop\nme":    {"can't", "stop", "me"},
		"\tI'm here ":        {"i'm", "here"},
		"etymology":          {"etymology"},
		"one two  three   4": {"one", "two", "three", "4"},
	}

	for text, expected := range tests {
		if diff := cmp.Diff(expected, etymology.Words(text), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Words(%q) (-want, +got):\n%s", text, diff)
		}
	}
}

// TestLookup_HTTP tests lookups end to end against a fake dictionary API.
func TestLookup_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/") {
		case "don't":
			fmt.Fprint(w, `[{"meta": {"id": "don't"}, "fl": "verb"}]`)
		case "do not":
			fmt.Fprint(w, `[{"meta": {"id": "do"}, "et": [["text", "Middle English {it}don{/it}"]]}]`)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := etymology.New(mw.New("key", mw.WithBaseURL(srv.URL), mw.WithHTTPClient(srv.Client())))
	results := c.LookupAll(context.Background(), []string{"don't", "xyzzy"})

	if got, want := len(results), 2; got != want {
		t.Fatalf("len(results): want %d, got %d", want, got)
	}

	found, ok := results[0].(*etymology.Found)
	if !ok {
		t.Fatalf("results[0]: want *Found, got %#v", results[0])
	}
	if got, want := found.ExpandedForm, "do not"; got != want {
		t.Errorf("ExpandedForm: want %q, got %q", want, got)
	}
	if got, want := found.Etymology, "Middle English {it}don{/it}"; got != want {
		t.Errorf("Etymology: want %q, got %q", want, got)
	}

	notFound, ok := results[1].(*etymology.NotFound)
	if !ok {
		t.Fatalf("results[1]: want *NotFound, got %#v", results[1])
	}
	if notFound.Message() == "" {
		t.Errorf("Message: want non-empty error")
	}
	if !errors.Is(notFound.Err, mw.ErrHTTPStatus) {
		t.Errorf("Error: want %v, got %v", mw.ErrHTTPStatus, notFound.Err)
	}
}
