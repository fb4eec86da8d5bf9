// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import "testing"

func TestMatchTable_InsertAndLookup(t *testing.T) {
	table := acquireMatchTable()
	defer releaseMatchTable(table)

	table.insert(42, hashEntry{offset: 100, checksum: 0xDEAD})
	table.insert(42, hashEntry{offset: 200, checksum: 0xBEEF})

	bucket := table.bucket(42)
	if bucket[0].offset != 100 || bucket[1].offset != 200 {
		t.Fatalf("bucket order wrong: %+v", bucket[:2])
	}
	for _, e := range bucket[2:] {
		if e.offset != 0 {
			t.Fatalf("expected empty sentinel, got %+v", e)
		}
	}
}

func TestMatchTable_FIFOEviction(t *testing.T) {
	table := acquireMatchTable()
	defer releaseMatchTable(table)

	for i := 1; i <= bucketSize; i++ {
		table.insert(7, hashEntry{offset: uint32(i), checksum: uint32(i)})
	}

	// The bucket is full; the next insert must overwrite the oldest entry.
	table.insert(7, hashEntry{offset: 999, checksum: 999})

	bucket := table.bucket(7)
	if bucket[0].offset != 999 {
		t.Fatalf("oldest slot not overwritten: %+v", bucket[0])
	}
	for i := 1; i < bucketSize; i++ {
		if bucket[i].offset != uint32(i+1) {
			t.Fatalf("slot %d disturbed: %+v", i, bucket[i])
		}
	}

	// And the one after that evicts the second oldest.
	table.insert(7, hashEntry{offset: 1000, checksum: 1000})
	if table.bucket(7)[1].offset != 1000 {
		t.Fatalf("cursor did not advance: %+v", table.bucket(7)[1])
	}
}

func TestMatchTable_BucketsAreIndependent(t *testing.T) {
	table := acquireMatchTable()
	defer releaseMatchTable(table)

	table.insert(0, hashEntry{offset: 1, checksum: 1})
	table.insert(numBuckets-1, hashEntry{offset: 2, checksum: 2})

	if table.bucket(0)[0].offset != 1 {
		t.Fatal("bucket 0 entry missing")
	}
	if table.bucket(numBuckets-1)[0].offset != 2 {
		t.Fatal("last bucket entry missing")
	}

	used, total := table.occupancy()
	if used != 2 {
		t.Fatalf("occupancy used = %d, want 2", used)
	}
	if total != numBuckets*bucketSize {
		t.Fatalf("occupancy total = %d, want %d", total, numBuckets*bucketSize)
	}
}

func TestMatchTable_PoolReuseStartsEmpty(t *testing.T) {
	table := acquireMatchTable()
	table.insert(3, hashEntry{offset: 5, checksum: 5})
	releaseMatchTable(table)

	reused := acquireMatchTable()
	defer releaseMatchTable(reused)

	used, _ := reused.occupancy()
	if used != 0 {
		t.Fatalf("reused table not empty: %d live entries", used)
	}
	if reused.cursors[3] != 0 {
		t.Fatal("reused table cursor not reset")
	}
}
