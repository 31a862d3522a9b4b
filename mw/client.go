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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the base URL of the Collegiate Dictionary API.
const DefaultBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"

// maxResponseSize limits the size of a response body.
const maxResponseSize = 8 << 20

var (
	// ErrMW is a parent error for all client errors.
	ErrMW = errors.New("mw")

	// ErrHTTPStatus indicates the API returned an unsuccessful HTTP status.
	ErrHTTPStatus = fmt.Errorf("%w: unexpected HTTP status", ErrMW)

	// ErrDecode indicates the API response could not be decoded.
	ErrDecode = fmt.Errorf("%w: decoding response", ErrMW)

	// ErrRequest indicates the request could not be sent.
	ErrRequest = fmt.Errorf("%w: request failed", ErrMW)
)

// Client is a Collegiate Dictionary API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL of the API.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a new Client using the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer("github.com/ianlewis/go-etymology/mw"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Entries queries the dictionary for the exact word.
func (c *Client) Entries(ctx context.Context, word string) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "mw.Entries", trace.WithAttributes(
		attribute.String("word", word),
	))
	defer span.End()

	r, err := c.entries(ctx, word)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("entries", len(r.Entries)),
		attribute.Int("suggestions", len(r.Suggestions)),
	)
	return r, nil
}

func (c *Client) entries(ctx context.Context, word string) (*Response, error) {
	u := c.baseURL + "/" + url.PathEscape(word) + "?" + url.Values{"key": {c.apiKey}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch etymology for %s: %w", ErrRequest, word, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "querying dictionary", "word", word)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch etymology for %s: %w", ErrRequest, word, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "dictionary response", "word", word, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: failed to fetch etymology for %s: %s", ErrHTTPStatus, word, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch etymology for %s: %w", ErrRequest, word, err)
	}

	r, err := ParseResponse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch etymology for %s: %w", word, err)
	}
	return r, nil
}
