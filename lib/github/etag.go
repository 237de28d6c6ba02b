// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "sync"

// CachedResponse is what the client remembers about a GET response so
// that a later 304 Not Modified can be answered locally. Link is kept
// because GitHub does not reliably repeat pagination headers on 304.
type CachedResponse struct {
	ETag string
	Link string
	Body []byte
}

// ETagStore holds cached responses keyed by absolute request URL.
// Implementations must be safe for concurrent use. Get misses are
// cheap; stores that cannot reach their backing storage report a miss
// rather than an error.
type ETagStore interface {
	Get(url string) (CachedResponse, bool)
	Put(url string, response CachedResponse)
}

// memoryETagStore keeps responses for the lifetime of the process. It
// has no eviction and is bounded by the number of distinct URLs
// queried.
type memoryETagStore struct {
	mu      sync.Mutex
	entries map[string]CachedResponse
}

// NewMemoryETagStore returns an in-process ETagStore.
func NewMemoryETagStore() ETagStore {
	return &memoryETagStore{entries: make(map[string]CachedResponse)}
}

func (store *memoryETagStore) Get(url string) (CachedResponse, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	entry, ok := store.entries[url]
	return entry, ok
}

func (store *memoryETagStore) Put(url string, response CachedResponse) {
	if response.ETag == "" {
		return
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[url] = response
}

// noETagStore disables conditional requests.
type noETagStore struct{}

// NoETagStore returns an ETagStore that never remembers anything.
func NoETagStore() ETagStore { return noETagStore{} }

func (noETagStore) Get(string) (CachedResponse, bool) { return CachedResponse{}, false }

func (noETagStore) Put(string, CachedResponse) {}
