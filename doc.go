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

// Package etymology looks up English word etymologies in the Merriam-Webster
// Collegiate Dictionary.
//
// Words are looked up one at a time, in order. When a word has no etymology
// and is a known contraction (e.g. "don't") its expanded form ("do not") is
// looked up instead. Each lookup produces a [Result] which is either a
// [*Found] carrying the etymology markup or a [*NotFound] carrying the
// reason the lookup failed. A failed lookup never stops a batch.
//
// Etymologies are returned as raw dictionary markup. Use package
// [github.com/ianlewis/go-etymology/markup] to render them.
package etymology
