/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/humaidq/labdash/logging"
)

var catalogLogger = logging.Logger(logging.SourceLoader)

// Catalog tracks the report identifiers available in a directory, for the
// selection dropdown. Identifiers are file names minus the .json suffix.
type Catalog struct {
	dir string

	mu  sync.RWMutex
	ids []string
}

// NewCatalog scans the directory and returns a catalog of its reports.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Identifiers returns the known report identifiers, sorted.
func (c *Catalog) Identifiers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.ids...)
}

// Contains reports whether an identifier is in the catalog.
func (c *Catalog) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, known := range c.ids {
		if known == id {
			return true
		}
	}
	return false
}

func (c *Catalog) refresh() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("scan reports directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)

	c.mu.Lock()
	c.ids = ids
	c.mu.Unlock()

	return nil
}

// Watch rescans the directory whenever its contents change, until the
// context is cancelled. It returns once the watcher is registered.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create reports watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch reports directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
					continue
				}
				if err := c.refresh(); err != nil {
					catalogLogger.Warn("Failed to rescan reports directory", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				catalogLogger.Warn("Reports watcher error", "error", err)
			}
		}
	}()

	return nil
}
