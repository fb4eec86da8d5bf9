// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

// LDM format constants: window geometry, hash table geometry, and the block
// token layout. Encoder and decoder must agree on all of these; there is no
// runtime-negotiated parameter block.

// Window and match bounds.
const (
	windowLog = 27            // window-size exponent
	window    = 1 << windowLog // maximum back-reference distance

	minMatchLength = 64             // matches shorter than this are never emitted
	hashLength     = minMatchLength // the rolling checksum covers exactly this many bytes
)

// Hash table geometry. The table footprint is 1<<memoryLog bytes of entries
// plus one FIFO cursor byte per bucket.
const (
	memoryLog = 23 // table-memory exponent
	entryLog  = 3  // entries are 8 bytes: 4-byte offset, 4-byte checksum
	bucketLog = 3  // bucket capacity exponent

	hashLog    = memoryLog - entryLog - bucketLog
	numBuckets = 1 << hashLog
	bucketSize = 1 << bucketLog
)

// Insertion policy: a position is indexed only when
// (pos & sampleMask) == sampleMask. insertionLag, when nonzero, makes sampled
// insertions reference a position that far behind the read cursor so the
// searcher can probe a position before it becomes indexed.
const (
	sampleMask   = 7
	insertionLag = 0
)

// Block token layout: one byte split into a literal-length nibble (high) and
// a match-length nibble (low), each extended with 0xFF runs when saturated.
// Offsets are fixed 4-byte little-endian. Stored match lengths are biased by
// -minMatchLength.
const (
	offsetSize = 4

	mlBits  = 4
	runMask = (1 << (8 - mlBits)) - 1
	mlMask  = (1 << mlBits) - 1
)

// Rolling checksum parameters: per-byte bias added to every input byte, and
// the Knuth multiplier projecting a checksum onto a bucket index.
const (
	checksumCharOffset = 10
	hashMultiplier     = 2654435761
)

// maxInputSize bounds compressible inputs: table entries store positions as
// uint32 offsets from the input base.
const maxInputSize = 1<<32 - 1

// CompressBound returns the maximum compressed size for an input of n bytes:
// the worst case for the token scheme is all-literal output.
func CompressBound(n int) int {
	return n + n/255 + 16
}
