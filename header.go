// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import "encoding/binary"

// HeaderSize is the size of the optional container header: two little-endian
// uint64 values, compressed size then decompressed size. The header frames
// the payload for the command-line driver; the core codec never reads it.
const HeaderSize = 16

// WriteHeader writes the container header into dst.
func WriteHeader(dst []byte, compressedSize, decompressedSize uint64) error {
	if len(dst) < HeaderSize {
		return ErrHeaderTooShort
	}

	binary.LittleEndian.PutUint64(dst, compressedSize)
	binary.LittleEndian.PutUint64(dst[8:], decompressedSize)

	return nil
}

// AppendHeader appends the container header to dst and returns the extended slice.
func AppendHeader(dst []byte, compressedSize, decompressedSize uint64) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, compressedSize)
	return binary.LittleEndian.AppendUint64(dst, decompressedSize)
}

// ReadHeader reads the container header from src.
func ReadHeader(src []byte) (compressedSize, decompressedSize uint64, err error) {
	if len(src) < HeaderSize {
		return 0, 0, ErrHeaderTooShort
	}

	compressedSize = binary.LittleEndian.Uint64(src)
	decompressedSize = binary.LittleEndian.Uint64(src[8:])

	return compressedSize, decompressedSize, nil
}
