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

// Package mw implements a client for the Merriam-Webster Collegiate
// Dictionary API.
//
// The API returns a JSON array for each query. When the word is found the
// array contains entry objects. When it is not found the array may instead
// contain spelling suggestions as plain strings.
//
// More info on the API can be found at this URL:
// https://dictionaryapi.com/products/json
package mw
