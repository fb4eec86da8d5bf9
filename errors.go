// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import "errors"

// Sentinel errors shared by the codec and the container framing.
var (
	// ErrEmptyInput is returned for a zero-length payload; even an empty
	// stream carries one trailing-run token byte.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when a payload ends mid-block: inside a
	// length extension, a literal run, or a truncated offset.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a block's literals or match would
	// write past the decode buffer, i.e. OutLen understates the stream.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a match offset reaches before
	// the start of the decoded output (offset zero included).
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOutputTooSmall is returned when the compressor output buffer cannot
	// hold the next block. Size destination buffers with CompressBound.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrOptionsRequired is returned when decompression is attempted without
	// options: the payload does not record its decompressed size, so OutLen
	// must come from the caller (usually the container header).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when the input exceeds what the format can
	// address (table offsets are 32-bit), or when DecompressFromReader reads
	// more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	// ErrHeaderTooShort is returned when a buffer cannot hold the 16-byte
	// container header.
	ErrHeaderTooShort = errors.New("header too short")
)
