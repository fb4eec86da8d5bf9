// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

// ldmCompressor is the per-call compression context. All positions are byte
// indices into src; table entries store indices, never pointers.
type ldmCompressor struct {
	src []byte
	dst []byte
	op  int // output cursor

	ip     int // current read position
	anchor int // start of pending literals

	lastPos int    // last position whose window checksum is held in lastSum
	lastSum uint32

	lagPos int // trailing insertion position when insertionLag > 0
	lagSum uint32

	table *matchTable
	stats *CompressStats
}

// Compress compresses src with long-distance matching and returns the
// compressed payload. opts may be nil.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, CompressBound(len(src)))
	n, err := compressCore(dst, src, opts.Stats)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. Returns ErrOutputTooSmall if dst cannot hold the result; size dst
// with CompressBound to guarantee success. opts may be nil.
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	return compressCore(dst, src, opts.Stats)
}

func compressCore(dst, src []byte, stats *CompressStats) (int, error) {
	if uint64(len(src)) > maxInputSize {
		return 0, ErrInputTooLarge
	}

	table := acquireMatchTable()
	defer releaseMatchTable(table)

	c := &ldmCompressor{src: src, dst: dst, table: table, stats: stats}
	if stats != nil {
		stats.reset()
	}

	if err := c.run(); err != nil {
		return 0, err
	}

	if stats != nil {
		stats.TableUsed, stats.TableEntries = table.occupancy()
	}

	return c.op, nil
}

// run walks the input: slide the checksum one byte per step, probe the table
// at every position, index sampled positions, and emit a block whenever the
// searcher finds a candidate. Probing happens before insertion so a position
// never matches itself.
func (c *ldmCompressor) run() error {
	n := len(c.src)
	if n <= hashLength {
		return c.emitTrailingRun()
	}

	imatchLimit := n - minMatchLength
	ihashLimit := n - hashLength

	// Seed the rolling state from the first window. Position 0 itself is
	// excluded from the index by the sampling mask, keeping offset 0 free as
	// the empty-slot sentinel.
	c.lastSum = bulkChecksum(c.src[:hashLength])
	c.lastPos = 0
	c.lagSum = c.lastSum
	c.lagPos = 0

	for c.lastPos < imatchLimit {
		pos := c.lastPos + 1
		sum := slideChecksum(c.lastSum, c.src[pos-1], c.src[pos-1+hashLength])
		c.ip = pos
		c.slideLag(pos)

		hash := checksumToHash(sum)
		entry, fwd, back, found := c.bestEntry(hash, sum)
		c.putHash(pos, hash, sum)
		if !found {
			continue
		}

		// Pull the block start back across the backward extension; the
		// extension is bounded by the anchor, so pending literals shrink but
		// never go negative.
		start := c.ip - back
		offset := c.ip - int(entry.offset)
		literalLength := start - c.anchor
		matchLength := fwd + back

		if err := c.emitBlock(literalLength, offset, matchLength-minMatchLength); err != nil {
			return err
		}
		if c.stats != nil {
			c.stats.record(literalLength, offset, matchLength)
		}

		// Slide the rolling state across the spanned region, indexing sampled
		// positions on the way, so lastSum is valid at the new anchor.
		end := c.ip + fwd
		for p := c.lastPos + 1; p <= end && p <= ihashLimit; p++ {
			s := slideChecksum(c.lastSum, c.src[p-1], c.src[p-1+hashLength])
			c.slideLag(p)
			c.putHash(p, checksumToHash(s), s)
		}

		c.anchor = end
		c.ip = end

		if c.lastPos != end {
			// The block reaches past the last hashable position; no further
			// match can start and the remainder becomes the trailing run.
			break
		}
	}

	return c.emitTrailingRun()
}

// putHash records pos as the latest hashed position and indexes it when the
// sampling mask selects it. With insertion lag enabled, sampled insertions
// reference the position captured insertionLag bytes behind the cursor, so
// the searcher gets a grace window to probe a position before it is indexed.
func (c *ldmCompressor) putHash(pos int, hash, sum uint32) {
	if pos&sampleMask == sampleMask {
		if insertionLag > 0 && c.lagPos > 0 {
			// #nosec G115 -- positions are bounded by maxInputSize.
			c.table.insert(checksumToHash(c.lagSum), hashEntry{offset: uint32(c.lagPos), checksum: c.lagSum})
		} else {
			// #nosec G115 -- positions are bounded by maxInputSize.
			c.table.insert(hash, hashEntry{offset: uint32(pos), checksum: sum})
		}
	}

	c.lastPos = pos
	c.lastSum = sum
}

// slideLag advances the lagged checksum in step with the read cursor once the
// cursor is more than insertionLag bytes into the input.
func (c *ldmCompressor) slideLag(pos int) {
	if insertionLag == 0 {
		return
	}

	if pos > insertionLag {
		c.lagSum = slideChecksum(c.lagSum, c.src[c.lagPos], c.src[c.lagPos+hashLength])
		c.lagPos++
	}
}
