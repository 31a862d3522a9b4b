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
	"errors"
)

// ErrNoEtymology indicates that no dictionary entry had an etymology.
//
//nolint:stylecheck // The message is shown to users as is.
var ErrNoEtymology = errors.New("No etymology found")

// Result is the result of looking up a word. A Result is either a *Found or
// a *NotFound.
type Result interface {
	// Query returns the word that was looked up.
	Query() string

	isResult()
}

// Found is the result of a successful lookup.
type Found struct {
	// Word is the word that was looked up.
	Word string

	// Etymology is the etymology markup.
	Etymology string

	// ExpandedForm is the expanded form of a contraction when the etymology
	// was found by looking up the expanded form instead of Word.
	ExpandedForm string
}

// Query implements [Result.Query].
func (f *Found) Query() string {
	return f.Word
}

func (*Found) isResult() {}

// NotFound is the result of a failed lookup.
type NotFound struct {
	// Word is the word that was looked up.
	Word string

	// Err is the reason the lookup failed.
	Err error

	// Suggestions are spelling suggestions returned by the dictionary.
	Suggestions []string
}

// Query implements [Result.Query].
func (n *NotFound) Query() string {
	return n.Word
}

func (*NotFound) isResult() {}

// Message returns the error message shown for the word.
func (n *NotFound) Message() string {
	if n.Err == nil {
		return ErrNoEtymology.Error()
	}
	return n.Err.Error()
}
