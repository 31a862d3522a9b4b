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
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ianlewis/go-etymology/contraction"
	"github.com/ianlewis/go-etymology/mw"
)

// Provider queries a dictionary for entries matching a word.
type Provider interface {
	Entries(ctx context.Context, word string) (*mw.Response, error)
}

// Client looks up word etymologies.
type Client struct {
	provider Provider
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a new Client that queries the given provider.
func New(p Provider, opts ...Option) *Client {
	c := &Client{
		provider: p,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer("github.com/ianlewis/go-etymology"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Words splits a free-text word list into lower-cased words.
func Words(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Lookup looks up the etymology of a single word. If the word has no
// etymology, or the query fails, and the word is a known contraction the
// expanded form is looked up instead.
func (c *Client) Lookup(ctx context.Context, word string) Result {
	ctx, span := c.tracer.Start(ctx, "etymology.Lookup", trace.WithAttributes(
		attribute.String("word", word),
	))
	defer span.End()

	r := c.lookup(ctx, word)
	switch r := r.(type) {
	case *Found:
		span.SetAttributes(
			attribute.Bool("found", true),
			attribute.String("expanded_form", r.ExpandedForm),
		)
	case *NotFound:
		span.SetAttributes(attribute.Bool("found", false))
		if !errors.Is(r.Err, ErrNoEtymology) {
			span.RecordError(r.Err)
		}
	}
	return r
}

func (c *Client) lookup(ctx context.Context, word string) Result {
	resp, err := c.provider.Entries(ctx, word)
	if err == nil {
		if et, ok := resp.Etymology(); ok {
			c.logger.DebugContext(ctx, "etymology found", "word", word)
			return &Found{
				Word:      word,
				Etymology: et,
			}
		}
	} else {
		c.logger.DebugContext(ctx, "lookup failed", "word", word, "error", err)
	}

	if expanded, ok := contraction.Expand(word); ok {
		c.logger.DebugContext(ctx, "looking up expanded form", "word", word, "expanded", expanded)

		fallback, fallbackErr := c.provider.Entries(ctx, expanded)
		if fallbackErr != nil {
			c.logger.DebugContext(ctx, "lookup failed", "word", expanded, "error", fallbackErr)
			return &NotFound{
				Word: word,
				Err:  fallbackErr,
			}
		}
		if et, ok := fallback.Etymology(); ok {
			c.logger.DebugContext(ctx, "etymology found", "word", word, "expanded", expanded)
			return &Found{
				Word:         word,
				Etymology:    et,
				ExpandedForm: expanded,
			}
		}
		return &NotFound{
			Word:        word,
			Err:         ErrNoEtymology,
			Suggestions: suggestions(fallback),
		}
	}

	if err != nil {
		return &NotFound{
			Word: word,
			Err:  err,
		}
	}

	c.logger.DebugContext(ctx, "no etymology", "word", word)
	return &NotFound{
		Word:        word,
		Err:         ErrNoEtymology,
		Suggestions: suggestions(resp),
	}
}

func suggestions(r *mw.Response) []string {
	if r == nil {
		return nil
	}
	return r.Suggestions
}

// LookupAll looks up each word in order. Words are looked up one at a time
// and a failed lookup does not stop the remaining lookups. The results are in
// the same order as words.
func (c *Client) LookupAll(ctx context.Context, words []string) []Result {
	results := make([]Result, 0, len(words))
	for i, word := range words {
		c.logger.DebugContext(ctx, "looking up word", "word", word, "n", i+1, "total", len(words))
		results = append(results, c.Lookup(ctx, word))
	}
	return results
}
