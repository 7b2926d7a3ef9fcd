// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wiktionary provides a client for the Wiktionary REST API
// along with a parser extracting Dutch inflection tables from wiki
// article HTML. All requests share a single rate limiter so batch
// processing stays polite to the public service.
package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/woordwijzer/morph"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const retryInterval = 500 * time.Millisecond

// ErrNotFound means Wiktionary has no usable Dutch data for a word.
// It is a regular data-absence condition, not a failure.
var ErrNotFound = errors.New("word not found")

// Client accesses Wiktionary. A single instance can be shared by
// concurrent goroutines (http.Client and rate.Limiter are safe for
// concurrent use and the configuration is read-only); the shared
// limiter then paces the requests of all of them together.
type Client struct {
	conf    *Conf
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Wiktionary client based on the provided
// (already validated) configuration.
func NewClient(conf *Conf) *Client {
	return &Client{
		conf: conf,
		client: &http.Client{
			Timeout: conf.RequestTimeout(),
		},
		limiter: rate.NewLimiter(rate.Every(conf.ReqInterval()), 1),
	}
}

// FetchDefinitions obtains Dutch definitions of a word from the REST
// API. ErrNotFound is returned both when the service does not know
// the word at all and when it lacks a Dutch section for it.
func (c *Client) FetchDefinitions(ctx context.Context, word string) (*DefinedWord, error) {
	reqURL := fmt.Sprintf("%s/page/definition/%s", c.conf.APIBaseURL, url.PathEscape(word))
	body, status, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch definitions of '%s': %w", word, err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, ErrNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("failed to fetch definitions of '%s': unexpected status %d", word, status)
	}
	var payload definitionsPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode definitions of '%s': %w", word, err)
	}
	ans := payload.definedWord(word)
	if ans == nil {
		return nil, ErrNotFound
	}
	return ans, nil
}

// FetchInflections downloads the Dutch Wiktionary article of a word
// and extracts inflected forms from its grammar tables. A missing
// article yields ErrNotFound, an article without recognizable tables
// yields zero Forms and no error.
func (c *Client) FetchInflections(ctx context.Context, word string) (morph.Forms, error) {
	reqURL := fmt.Sprintf("%s/%s", c.conf.PageBaseURL, url.PathEscape(word))
	body, status, err := c.get(ctx, reqURL)
	if err != nil {
		return morph.Forms{}, fmt.Errorf("failed to fetch inflections of '%s': %w", word, err)
	}
	switch {
	case status == http.StatusNotFound:
		return morph.Forms{}, ErrNotFound
	case status != http.StatusOK:
		return morph.Forms{}, fmt.Errorf("failed to fetch inflections of '%s': unexpected status %d", word, status)
	}
	return ParseInflectionTables(string(body)), nil
}

// get performs a rate-limited GET request and returns the raw body
// along with the HTTP status.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", c.conf.ClientUserAgent)
	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// doWithRetry executes a request with a single retry on a server
// error or a network failure.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}
	if resp != nil {
		resp.Body.Close()
	}
	log.Warn().
		Err(err).
		Str("url", req.URL.String()).
		Msg("retrying failed Wiktionary request")
	time.Sleep(retryInterval)
	return c.client.Do(req)
}
