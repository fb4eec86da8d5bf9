// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dustin/go-humanize"
)

// CompressStats holds emission-time observations from one compression call.
// The counters describe what the compressor emitted; they are not part of the
// compressed stream. TotalMatchLength counts full match lengths, without the
// on-wire -minMatchLength bias.
type CompressStats struct {
	Matches            int
	TotalMatchLength   int64
	TotalLiteralLength int64
	TotalOffset        int64
	MinOffset          int
	MaxOffset          int

	// OffsetHistogram buckets match offsets by floor(log2(offset)).
	OffsetHistogram [32]int

	// Table occupancy after the call.
	TableUsed    int
	TableEntries int
}

func (s *CompressStats) reset() {
	*s = CompressStats{}
}

func (s *CompressStats) record(literalLength, offset, matchLength int) {
	if s.Matches == 0 || offset < s.MinOffset {
		s.MinOffset = offset
	}
	if offset > s.MaxOffset {
		s.MaxOffset = offset
	}

	s.Matches++
	s.TotalLiteralLength += int64(literalLength)
	s.TotalOffset += int64(offset)
	s.TotalMatchLength += int64(matchLength)

	// offset >= 1 always; bits.Len32(x)-1 is floor(log2(x)).
	// #nosec G115 -- offset is bounded by the window.
	s.OffsetHistogram[bits.Len32(uint32(offset))-1]++
}

// String renders the statistics report.
func (s *CompressStats) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "window: 2^%d (%s), hash table: %s, %d buckets of %d\n",
		windowLog, humanize.IBytes(uint64(window)),
		humanize.IBytes(uint64(numBuckets*bucketSize)<<entryLog), numBuckets, bucketSize)

	if s.Matches == 0 {
		fmt.Fprintf(&b, "no matches, total literal length: %s\n",
			humanize.Comma(s.TotalLiteralLength))
		return b.String()
	}

	total := s.TotalMatchLength + s.TotalLiteralLength
	fmt.Fprintf(&b, "matches: %s, matched %s of %s (%.3f%%)\n",
		humanize.Comma(int64(s.Matches)),
		humanize.Comma(s.TotalMatchLength), humanize.Comma(total),
		100*float64(s.TotalMatchLength)/float64(total))
	fmt.Fprintf(&b, "avg match length: %.1f\n",
		float64(s.TotalMatchLength)/float64(s.Matches))
	fmt.Fprintf(&b, "avg literal length: %.1f, total literal length: %s\n",
		float64(s.TotalLiteralLength)/float64(s.Matches),
		humanize.Comma(s.TotalLiteralLength))
	fmt.Fprintf(&b, "avg offset: %.1f, min offset: %d, max offset: %d\n",
		float64(s.TotalOffset)/float64(s.Matches), s.MinOffset, s.MaxOffset)
	fmt.Fprintf(&b, "table occupancy: %d of %d (%.3f%%)\n",
		s.TableUsed, s.TableEntries,
		100*float64(s.TableUsed)/float64(s.TableEntries))

	b.WriteString("offset histogram: log2(offset), matches, % of matches\n")
	// #nosec G115 -- MaxOffset is bounded by the window.
	for i := 0; i <= bits.Len32(uint32(s.MaxOffset))-1; i++ {
		fmt.Fprintf(&b, "2^%2d: %10d %7.3f%%\n", i, s.OffsetHistogram[i],
			100*float64(s.OffsetHistogram[i])/float64(s.Matches))
	}

	return b.String()
}
