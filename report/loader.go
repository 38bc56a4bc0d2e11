/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// Loader retrieves and parses one report document by identifier.
type Loader interface {
	Load(ctx context.Context, id string) (*Report, error)
}

// FileLoader reads reports from a filesystem, one "<id>.json" per report.
type FileLoader struct {
	fsys fs.FS
}

// NewFileLoader returns a loader over the given filesystem root.
func NewFileLoader(fsys fs.FS) *FileLoader {
	return &FileLoader{fsys: fsys}
}

// Load reads and parses a report. Identifiers must be a single path
// element; anything else cannot name a report file.
func (l *FileLoader) Load(ctx context.Context, id string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validIdentifier(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	data, err := fs.ReadFile(l.fsys, id+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read report %q: %w", id, err)
	}

	rep, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", id, err)
	}
	return rep, nil
}

func validIdentifier(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	if strings.ContainsAny(id, `/\`) {
		return false
	}
	return fs.ValidPath(id)
}

// HTTPLoaderOptions configures fetch policy. Both knobs exist so callers
// can tune transport behavior without code changes.
type HTTPLoaderOptions struct {
	// Timeout bounds a single fetch attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// Retries is the number of additional attempts after a retryable
	// failure (5xx or transport error).
	Retries uint64
}

// DefaultTimeout bounds one HTTP fetch attempt unless configured otherwise.
const DefaultTimeout = 10 * time.Second

// HTTPLoader fetches "<base>/<id>.json" from a remote report source.
type HTTPLoader struct {
	base    string
	client  *http.Client
	retries uint64
}

// NewHTTPLoader returns a loader for the given base URL.
func NewHTTPLoader(baseURL string, opts HTTPLoaderOptions) *HTTPLoader {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPLoader{
		base:    strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retries: opts.Retries,
	}
}

// Load fetches and parses a report. A 404 maps to ErrNotFound and is not
// retried; server errors and transport failures are retried with fibonacci
// backoff up to the configured count.
func (l *HTTPLoader) Load(ctx context.Context, id string) (*Report, error) {
	if !validIdentifier(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	reportURL := l.base + "/" + url.PathEscape(id) + ".json"

	var body []byte
	backoff := retry.WithMaxRetries(l.retries, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reportURL, nil)
		if err != nil {
			return err
		}

		resp, err := l.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("fetch report %q: status %d", id, resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("fetch report %q: status %d", id, resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", id, err)
	}
	return rep, nil
}
