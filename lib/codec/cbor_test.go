// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
	"time"
)

type sampleEntry struct {
	ETag     string    `cbor:"etag"`
	Link     string    `cbor:"link,omitempty"`
	Body     []byte    `cbor:"body"`
	StoredAt time.Time `cbor:"stored_at"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleEntry{
		ETag:     `W/"abc123"`,
		Link:     `<https://api.github.com/user/1/followers?page=2>; rel="next"`,
		Body:     []byte(`[{"login":"octocat"}]`),
		StoredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.ETag != original.ETag || decoded.Link != original.Link {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
	if !bytes.Equal(decoded.Body, original.Body) {
		t.Errorf("body = %q, want %q", decoded.Body, original.Body)
	}
	if !decoded.StoredAt.Equal(original.StoredAt) {
		t.Errorf("stored_at = %v, want %v", decoded.StoredAt, original.StoredAt)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	entries := map[string]sampleEntry{
		"https://api.github.com/users/b/followers": {ETag: "b"},
		"https://api.github.com/users/a/followers": {ETag: "a"},
		"https://api.github.com/users/c/followers": {ETag: "c"},
	}

	first, err := Marshal(entries)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(entries)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("map encoding is not deterministic")
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	type newer struct {
		ETag  string `cbor:"etag"`
		Extra int    `cbor:"extra"`
	}
	data, err := Marshal(newer{ETag: "x", Extra: 9})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.ETag != "x" {
		t.Errorf("etag = %q, want x", decoded.ETag)
	}
}

func TestCompressRoundtrip(t *testing.T) {
	data := bytes.Repeat([]byte(`{"login":"octocat","avatar_url":"https://avatars.example/u/1"}`), 200)

	compressed := Compress(data)
	if len(compressed) >= len(data) {
		t.Errorf("compressed size %d should be smaller than input %d", len(compressed), len(data))
	}

	restored, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Error("decompressed data differs from input")
	}
}

func TestDecompressCorrupt(t *testing.T) {
	if _, err := Decompress([]byte("definitely not zstd")); err == nil {
		t.Fatal("expected error for corrupt input")
	}
}
