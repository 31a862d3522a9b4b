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

package mw

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ianlewis/go-etymology/internal/folding"
)

// Response is a response to a dictionary query.
type Response struct {
	// Entries are the matching dictionary entries.
	Entries []*Entry

	// Suggestions are spelling suggestions returned when no entry matched.
	Suggestions []string
}

// Entry is a dictionary entry.
type Entry struct {
	Meta     Meta     `json:"meta"`
	Headword Headword `json:"hwi"`

	// FunctionalLabel is the grammatical function of the entry (e.g. "noun").
	FunctionalLabel string `json:"fl"`

	// Date is the date of the first known use.
	Date string `json:"date"`

	// ShortDefs are abridged definitions.
	ShortDefs []string `json:"shortdef"`

	// Et is the raw etymology section. Each element is a two element array
	// holding a label and a value.
	Et []json.RawMessage `json:"et"`
}

// Meta is entry metadata.
type Meta struct {
	ID        string   `json:"id"`
	UUID      string   `json:"uuid"`
	Stems     []string `json:"stems"`
	Offensive bool     `json:"offensive"`
}

// Headword is the entry's headword information.
type Headword struct {
	Headword string `json:"hw"`
}

const (
	etText             = "text"
	etSupplementalNote = "et_snote"
	snoteText          = "t"
)

// Etymology returns the entry's etymology markup. The text fragments of the
// etymology are joined with single spaces and whitespace is folded. It
// returns false if the entry has no etymology.
func (e *Entry) Etymology() (string, bool) {
	if e == nil {
		return "", false
	}

	var fragments []string
	for _, raw := range e.Et {
		label, value, ok := labeled(raw)
		if !ok {
			continue
		}

		switch label {
		case etText:
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				fragments = append(fragments, s)
			}
		case etSupplementalNote:
			var note []json.RawMessage
			if err := json.Unmarshal(value, &note); err != nil {
				continue
			}
			for _, n := range note {
				l, v, ok := labeled(n)
				if !ok || l != snoteText {
					continue
				}
				var s string
				if err := json.Unmarshal(v, &s); err == nil {
					fragments = append(fragments, s)
				}
			}
		}
	}

	et := folding.Join(fragments)
	return et, et != ""
}

// labeled decodes a ["label", value] pair.
func labeled(raw json.RawMessage) (string, json.RawMessage, bool) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return "", nil, false
	}
	var label string
	if err := json.Unmarshal(pair[0], &label); err != nil {
		return "", nil, false
	}
	return label, pair[1], true
}

// Etymology returns the etymology of the first entry that has one.
func (r *Response) Etymology() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, e := range r.Entries {
		if et, ok := e.Etymology(); ok {
			return et, true
		}
	}
	return "", false
}

// ParseResponse parses a JSON response body.
func ParseResponse(b []byte) (*Response, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	r := &Response{}
	for _, item := range items {
		switch firstByte(item) {
		case '"':
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			r.Suggestions = append(r.Suggestions, s)
		case '{':
			var e Entry
			if err := json.Unmarshal(item, &e); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode, err)
			}
			r.Entries = append(r.Entries, &e)
		default:
			return nil, fmt.Errorf("%w: unexpected item %s", ErrDecode, item)
		}
	}
	return r, nil
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
