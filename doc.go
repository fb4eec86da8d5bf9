// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

/*
Package ldm implements long-distance matching (LDM) compression and
decompression: a single-pass pre-filter that removes repeated byte sequences
across very large windows (up to 128 MiB back-references) and emits them as
(literals, back-reference) blocks. The stream is raw LZ with no entropy stage;
chaining the output through a short-window entropy coder is the intended
downstream use.

Matches shorter than 64 bytes are never emitted, so the format only pays off
on long-range redundancy. Candidate positions are found with an rsync-style
rolling checksum over a 64-byte window and a fixed-size bucketed hash table
with FIFO replacement.

# Compress

Options may be nil. Statistics collection is opt-in via a caller-provided
sink:

	out, err := ldm.Compress(data, nil)

	var stats ldm.CompressStats
	out, err := ldm.Compress(data, &ldm.CompressOptions{Stats: &stats})

To compress into a caller-owned buffer (sized with CompressBound):

	n, err := ldm.CompressInto(dst, data, nil)

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := ldm.Decompress(compressed, ldm.DefaultDecompressOptions(expectedLen))

From an io.Reader (e.g. a stream with known decompressed size):

	out, err := ldm.DecompressFromReader(r, ldm.DefaultDecompressOptions(expectedLen))

# Container framing

WriteHeader and ReadHeader handle the optional 16-byte container header (two
little-endian uint64 sizes) used by the ldm command-line tool. The core codec
operates on the payload after this header.
*/
package ldm
