// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package cache stores per-file check results on disk, keyed by content and configuration.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is part of every key. Increment it when the stored format changes.
const schemaVersion = "1"

// Key identifies a cache entry.
type Key [sha256.Size]byte

// NewKey derives the key for a file's content checked with options identified by fingerprint.
func NewKey(fingerprint string, content []byte) Key {
	h := sha256.New()
	_, _ = h.Write([]byte(schemaVersion))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(fingerprint))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)

	var k Key
	h.Sum(k[:0])

	return k
}

// String returns the hex encoding of the key.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Cache is a directory of msgpack encoded entries. It is safe for concurrent use.
// A nil *Cache is a valid cache that never hits.
type Cache struct {
	dir string
}

// Open creates the cache directory if needed.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create cache directory: %w", err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Key) string {
	hexKey := key.String()

	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Get decodes the entry for key into out and returns true when present.
func (c *Cache) Get(key Key, out any) (bool, error) {
	if c == nil {
		return false, nil
	}

	f, err := os.Open(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("can't read cache entry: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("can't decode cache entry %s: %w", key, err)
	}

	return true, nil
}

// Put encodes v as the entry for key. Entries are replaced atomically.
func (c *Cache) Put(key Key, v any) (err error) {
	if c == nil {
		return nil
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("can't create cache directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("can't create cache entry: %w", err)
	}

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("can't encode cache entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("can't write cache entry: %w", err)
	}

	if err := os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("can't store cache entry: %w", err)
	}

	return nil
}
