// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

// DecompressOptions configures decompression. The LDM payload does not record
// its own decompressed size (the format has no self-describing framing), so
// OutLen must be supplied by the caller; for streams written by the ldm tool
// it comes from the container header.
type DecompressOptions struct {
	// OutLen is the decompressed size to allocate and enforce. For container
	// streams this is the header's decompressed-size field.
	OutLen int
	// MaxInputSize caps how many bytes DecompressFromReader will read before
	// decoding (0 = no limit). The payload itself is always read to EOF,
	// because the trailing run is delimited by input exhaustion.
	MaxInputSize int
}

// DefaultDecompressOptions returns options for a payload of known
// decompressed size, with unlimited reader input.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Stats, when non-nil, is reset and filled with emission-time statistics
	// for the call. Collection is free of allocations and does not affect the
	// compressed output.
	Stats *CompressStats
}

// DefaultCompressOptions returns options with statistics collection disabled.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}
