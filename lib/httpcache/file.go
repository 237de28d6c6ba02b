// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package httpcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bureau-foundation/commonfollowers/lib/codec"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// snapshotVersion is bumped when the on-disk layout changes. Snapshots
// with a different version are discarded on open.
const snapshotVersion = 1

type snapshot struct {
	Version int              `cbor:"version"`
	Entries map[string]entry `cbor:"entries"`
}

// FileStore is an ETag store backed by a single compressed snapshot
// file. Entries live in memory while the store is open; Close writes
// them back atomically. Safe for concurrent use.
type FileStore struct {
	path    string
	options Options

	mu      sync.Mutex
	entries map[string]entry
	dirty   bool
	closed  bool
}

var _ github.ETagStore = (*FileStore)(nil)

// OpenFile loads the snapshot at path. A missing file starts an empty
// store. A corrupt or foreign snapshot is logged and replaced on the
// next Close. Expired entries are dropped on load.
func OpenFile(path string, options Options) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("httpcache: file store requires a path")
	}
	options = options.withDefaults()

	store := &FileStore{
		path:    path,
		options: options,
		entries: make(map[string]entry),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("httpcache: reading %s: %w", path, err)
	}

	loaded, err := decodeSnapshot(data)
	if err != nil {
		options.Logger.Warn("discarding unreadable etag cache",
			"path", path,
			"error", err,
		)
		store.dirty = true
		return store, nil
	}

	now := options.Clock.Now()
	for url, cached := range loaded.Entries {
		if cached.expired(now, options.TTL) {
			store.dirty = true
			continue
		}
		store.entries[url] = cached
	}
	options.Logger.Debug("loaded etag cache", "path", path, "entries", len(store.entries))
	return store, nil
}

func decodeSnapshot(data []byte) (snapshot, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return snapshot{}, err
	}
	var loaded snapshot
	if err := codec.Unmarshal(raw, &loaded); err != nil {
		return snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if loaded.Version != snapshotVersion {
		return snapshot{}, fmt.Errorf("snapshot version %d, want %d", loaded.Version, snapshotVersion)
	}
	return loaded, nil
}

// Get returns the cached response for url if present and not expired.
func (store *FileStore) Get(url string) (github.CachedResponse, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	cached, ok := store.entries[url]
	if !ok {
		return github.CachedResponse{}, false
	}
	if cached.expired(store.options.Clock.Now(), store.options.TTL) {
		delete(store.entries, url)
		store.dirty = true
		return github.CachedResponse{}, false
	}
	return cached.response(), true
}

// Put records response for url. Responses without an ETag are ignored.
func (store *FileStore) Put(url string, response github.CachedResponse) {
	if response.ETag == "" {
		return
	}
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[url] = newEntry(response, store.options.Clock.Now())
	store.dirty = true
}

// Len reports the number of live entries.
func (store *FileStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.entries)
}

// Close writes the snapshot if anything changed since open. The write
// goes to a temporary file in the same directory followed by a rename,
// so a crash never leaves a truncated cache. Close is idempotent.
func (store *FileStore) Close() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.closed {
		return nil
	}
	store.closed = true
	if !store.dirty {
		return nil
	}

	now := store.options.Clock.Now()
	live := make(map[string]entry, len(store.entries))
	for url, cached := range store.entries {
		if !cached.expired(now, store.options.TTL) {
			live[url] = cached
		}
	}

	raw, err := codec.Marshal(snapshot{Version: snapshotVersion, Entries: live})
	if err != nil {
		return fmt.Errorf("httpcache: encoding snapshot: %w", err)
	}
	if err := writeFileAtomic(store.path, codec.Compress(raw)); err != nil {
		return fmt.Errorf("httpcache: writing %s: %w", store.path, err)
	}
	store.options.Logger.Debug("saved etag cache", "path", store.path, "entries", len(live))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}

	temporary, err := os.CreateTemp(directory, ".etags-*.tmp")
	if err != nil {
		return err
	}
	temporaryPath := temporary.Name()

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return err
	}
	if err := temporary.Sync(); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return err
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	return nil
}
