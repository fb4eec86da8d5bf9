// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import (
	"encoding/binary"
	"math/bits"
)

// Match search: given the current position's checksum, scan its bucket for
// the candidate with the longest combined forward+backward extension. Greedy,
// one candidate set per position; no lazy matching.

// forwardMatchLength returns the longest common prefix of src[pos:] and
// src[matchPos:], capped at the end of src. matchPos must be < pos.
func forwardMatchLength(src []byte, matchPos, pos int) int {
	n := 0
	limit := len(src)

	// Word-wise compare; the first differing word pinpoints the mismatch via
	// its trailing zero count.
	for pos+n+8 <= limit {
		diff := binary.LittleEndian.Uint64(src[matchPos+n:]) ^ binary.LittleEndian.Uint64(src[pos+n:])
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}

	for pos+n < limit && src[matchPos+n] == src[pos+n] {
		n++
	}

	return n
}

// backwardMatchLength counts bytes matching backwards before pos and
// matchPos, without crossing anchor on the read side nor the input base on
// the candidate side.
func backwardMatchLength(src []byte, pos, anchor, matchPos int) int {
	n := 0
	for pos-n > anchor && matchPos-n > 0 && src[pos-n-1] == src[matchPos-n-1] {
		n++
	}
	return n
}

// bestEntry scans the bucket for hash and returns the entry with the maximum
// forward+backward extension from c.ip, along with both extension lengths.
// Candidates are filtered on checksum equality, the window bound, and the
// minimum forward length. Ties favor later bucket entries.
func (c *ldmCompressor) bestEntry(hash, sum uint32) (best hashEntry, fwd, back int, ok bool) {
	bestScore := 0

	for _, e := range c.table.bucket(hash) {
		if e.offset == 0 || e.checksum != sum {
			continue
		}

		matchPos := int(e.offset)
		if c.ip-matchPos > window {
			continue
		}

		f := forwardMatchLength(c.src, matchPos, c.ip)
		if f < minMatchLength {
			continue
		}

		b := backwardMatchLength(c.src, c.ip, c.anchor, matchPos)
		if f+b >= bestScore {
			bestScore = f + b
			best, fwd, back, ok = e, f, b, true
		}
	}

	return
}
