// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import "sync"

// matchTable is the bucketed match index: numBuckets buckets of bucketSize
// (offset, checksum) entries with a per-bucket FIFO write cursor. offset 0 is
// the empty sentinel; position 0 is never indexed (the sampling mask excludes
// it), so the sentinel cannot collide with a live entry. No deduplication:
// equal checksums may coexist within a bucket.
type matchTable struct {
	entries []hashEntry // numBuckets * bucketSize, bucket-major
	cursors []byte      // per-bucket FIFO cursor, wraps mod bucketSize
}

// hashEntry is one indexed position: its offset from the input base and the
// rolling checksum observed there at insertion time.
type hashEntry struct {
	offset   uint32
	checksum uint32
}

// bucket returns the whole bucket for a hash, in index order.
func (t *matchTable) bucket(hash uint32) []hashEntry {
	base := int(hash) << bucketLog
	return t.entries[base : base+bucketSize]
}

// insert overwrites the oldest entry of the bucket and advances its cursor.
func (t *matchTable) insert(hash uint32, e hashEntry) {
	base := int(hash) << bucketLog
	cur := t.cursors[hash]
	t.entries[base+int(cur)] = e
	t.cursors[hash] = (cur + 1) & (bucketSize - 1)
}

// occupancy returns the number of live entries and the table capacity.
func (t *matchTable) occupancy() (used, total int) {
	for _, e := range t.entries {
		if e.offset != 0 {
			used++
		}
	}
	return used, len(t.entries)
}

func (t *matchTable) reset() {
	clear(t.entries)
	clear(t.cursors)
}

// matchTablePool recycles match tables between compression calls; the table
// is the dominant allocation of a compression context.
var matchTablePool = sync.Pool{
	New: func() any {
		return &matchTable{
			entries: make([]hashEntry, numBuckets*bucketSize),
			cursors: make([]byte, numBuckets),
		}
	},
}

// acquireMatchTable acquires an empty match table from the pool.
func acquireMatchTable() *matchTable {
	t := matchTablePool.Get().(*matchTable)
	t.reset()
	return t
}

// releaseMatchTable releases a match table to the pool.
func releaseMatchTable(t *matchTable) {
	if t == nil {
		return
	}

	matchTablePool.Put(t)
}
