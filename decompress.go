// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import (
	"encoding/binary"
	"io"
)

// checkDecompressOptions rejects missing or unusable options: the payload
// carries no decompressed size of its own, so a non-negative OutLen is the
// caller's obligation.
func checkDecompressOptions(opts *DecompressOptions) error {
	if opts == nil || opts.OutLen < 0 {
		return ErrOptionsRequired
	}
	return nil
}

// Decompress decodes a complete LDM payload, a block sequence ending in the
// trailing literal-only run, into a fresh buffer of opts.OutLen bytes. For
// streams framed by the ldm container, OutLen is the header's
// decompressed-size field. The decoded slice may be shorter than OutLen when
// the trailing run arrives early. Every read and write is bounds checked;
// malformed payloads surface as ErrInputOverrun, ErrOutputOverrun or
// ErrLookBehindUnderrun.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if err := checkDecompressOptions(opts); err != nil {
		return nil, err
	}

	dst := make([]byte, opts.OutLen)
	n, err := DecompressInto(dst, src)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decodes an LDM payload into a caller-owned buffer and
// returns the number of bytes written. An empty src is ErrEmptyInput: a valid
// payload holds at least the trailing-run token.
func DecompressInto(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	return decompressCore(src, dst)
}

// DecompressFromReader slurps the remaining stream and decodes it as one
// payload. The trailing run is delimited by input exhaustion, so the read
// goes to EOF; set opts.MaxInputSize to bound reads from untrusted readers
// (at most MaxInputSize+1 bytes are read, and exceeding it returns
// ErrInputTooLarge).
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if err := checkDecompressOptions(opts); err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore walks blocks: token, literal length, literals, then offset
// and match length unless the input is exhausted after the literals (the
// trailing run). Match copies may self-overlap when offset < matchLength,
// producing the run-length effect.
func decompressCore(src, dst []byte) (int, error) {
	var ip, op int

	for ip < len(src) {
		token := src[ip]
		ip++

		literalLength := int(token >> mlBits)
		if literalLength == runMask {
			ext, err := readLengthTail(src, &ip)
			if err != nil {
				return 0, err
			}
			literalLength += ext
		}

		if ip+literalLength > len(src) {
			return 0, ErrInputOverrun
		}
		if op+literalLength > len(dst) {
			return 0, ErrOutputOverrun
		}
		copy(dst[op:op+literalLength], src[ip:ip+literalLength])
		ip += literalLength
		op += literalLength

		// A block ending exactly at the input end is the trailing run: no
		// offset, no match length.
		if ip == len(src) {
			break
		}

		if ip+offsetSize > len(src) {
			return 0, ErrInputOverrun
		}
		offset := int(binary.LittleEndian.Uint32(src[ip:]))
		ip += offsetSize

		matchLength := int(token & mlMask)
		if matchLength == mlMask {
			ext, err := readLengthTail(src, &ip)
			if err != nil {
				return 0, err
			}
			matchLength += ext
		}
		matchLength += minMatchLength

		if err := copyBackRef(dst, op, offset, matchLength); err != nil {
			return 0, err
		}
		op += matchLength
	}

	return op, nil
}

// readLengthTail accumulates a 0xFF-run length extension: a sequence of 0xFF
// bytes closed by a byte < 255, all summed.
func readLengthTail(src []byte, ip *int) (int, error) {
	n := 0
	for {
		if *ip >= len(src) {
			return 0, ErrInputOverrun
		}

		b := src[*ip]
		*ip++
		n += int(b)
		if b != 255 {
			return n, nil
		}
	}
}
