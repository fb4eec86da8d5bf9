// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

// copyBackRef expands a back-reference: matchLength bytes copied to dst[op:]
// from offset bytes behind the write cursor. With long-distance matches the
// offset is usually far larger than the match and the copy is a single
// non-overlapping memmove; when offset < matchLength the match feeds on its
// own output (the run-length effect), which is reproduced by widening the
// source window toward the write cursor until the run is filled. Both paths
// produce exactly the bytes of the reference byte-by-byte loop.
func copyBackRef(dst []byte, op, offset, matchLength int) error {
	if offset <= 0 || offset > op {
		return ErrLookBehindUnderrun
	}

	end := op + matchLength
	if end > len(dst) {
		return ErrOutputOverrun
	}

	from := op - offset
	if offset >= matchLength {
		copy(dst[op:end], dst[from:from+matchLength])
		return nil
	}

	// Each pass copies everything written since `from`, at least offset
	// bytes, so the available window doubles per iteration.
	for op < end {
		op += copy(dst[op:end], dst[from:op])
	}

	return nil
}
