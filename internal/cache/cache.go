// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package cache implements the sharded LRU cache used for uncompressed
// blocks and for the optional row cache.
package cache

import (
	"container/list"
	"runtime"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// Cache is a fixed-capacity, byte-bounded LRU cache. It is safe for
// concurrent use; contention is reduced by splitting the capacity across
// 2^n shards, with entries assigned to shards by key hash.
//
// A Cache is shared, not copied, when the configuration referencing it is
// copied. The same instance may back several databases.
type Cache struct {
	maxSize int64
	shards  []shard
}

type shard struct {
	mu       sync.Mutex
	capacity int64
	size     int64
	blocks   map[string]*list.Element
	lru      *list.List // front is most recently used
}

type entry struct {
	key   string
	value []byte
}

// New creates a cache holding at most size bytes.
func New(size int64) *Cache {
	if size <= 0 {
		panic(errors.AssertionFailedf("cache size %d must be positive", size))
	}
	n := 1
	for n < runtime.GOMAXPROCS(0) {
		n *= 2
	}
	c := &Cache{
		maxSize: size,
		shards:  make([]shard, n),
	}
	for i := range c.shards {
		c.shards[i].capacity = size / int64(n)
		c.shards[i].blocks = make(map[string]*list.Element)
		c.shards[i].lru = list.New()
	}
	return c
}

// MaxSize returns the capacity of the cache in bytes.
func (c *Cache) MaxSize() int64 { return c.maxSize }

// Size returns the total size of the currently cached values in bytes.
func (c *Cache) Size() int64 {
	var size int64
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		size += s.size
		s.mu.Unlock()
	}
	return size
}

// Get returns the cached value for key, or nil if absent. The returned slice
// must not be modified.
func (c *Cache) Get(key []byte) []byte {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.blocks[string(key)]
	if !ok {
		return nil
	}
	s.lru.MoveToFront(e)
	return e.Value.(*entry).value
}

// Set inserts the key/value pair, evicting least recently used entries from
// the key's shard as needed. Values larger than the shard capacity are not
// cached.
func (c *Cache) Set(key, value []byte) {
	s := c.shard(key)
	charge := int64(len(key) + len(value))
	if charge > s.capacity {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.blocks[string(key)]; ok {
		ent := e.Value.(*entry)
		s.size += int64(len(value) - len(ent.value))
		ent.value = value
		s.lru.MoveToFront(e)
	} else {
		ent := &entry{key: string(key), value: value}
		s.blocks[ent.key] = s.lru.PushFront(ent)
		s.size += charge
	}
	for s.size > s.capacity {
		oldest := s.lru.Back()
		ent := oldest.Value.(*entry)
		s.lru.Remove(oldest)
		delete(s.blocks, ent.key)
		s.size -= int64(len(ent.key) + len(ent.value))
	}
}

// Delete removes the entry for key if present.
func (c *Cache) Delete(key []byte) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.blocks[string(key)]; ok {
		ent := e.Value.(*entry)
		s.lru.Remove(e)
		delete(s.blocks, ent.key)
		s.size -= int64(len(ent.key) + len(ent.value))
	}
}

func (c *Cache) shard(key []byte) *shard {
	return &c.shards[xxhash.Sum64(key)&uint64(len(c.shards)-1)]
}
