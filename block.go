// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import "encoding/binary"

// Block wire form: token byte (high nibble literal length, low nibble match
// length), literal-length extension, raw literals, 4-byte little-endian
// offset, match-length extension. A saturated nibble (15) is extended with a
// run of 0xFF bytes followed by a final byte holding the remainder (0..254).
// The trailing run at end of stream carries token + literals only.

// lengthTailSize returns the byte count of the 0xFF-run extension encoding v.
func lengthTailSize(v int) int {
	return v/255 + 1
}

// putLengthTail writes the extension bytes for v at the output cursor.
// The caller has already checked the output bound.
func (c *ldmCompressor) putLengthTail(v int) {
	for ; v >= 255; v -= 255 {
		c.dst[c.op] = 255
		c.op++
	}

	c.dst[c.op] = byte(v)
	c.op++
}

// emitBlock serializes one block. storedMatchLength carries the
// -minMatchLength bias; the decoder adds it back.
func (c *ldmCompressor) emitBlock(literalLength, offset, storedMatchLength int) error {
	need := 1 + literalLength + offsetSize
	if literalLength >= runMask {
		need += lengthTailSize(literalLength - runMask)
	}
	if storedMatchLength >= mlMask {
		need += lengthTailSize(storedMatchLength - mlMask)
	}
	if c.op+need > len(c.dst) {
		return ErrOutputTooSmall
	}

	tokenAt := c.op
	c.op++

	if literalLength >= runMask {
		c.dst[tokenAt] = runMask << mlBits
		c.putLengthTail(literalLength - runMask)
	} else {
		c.dst[tokenAt] = byte(literalLength) << mlBits
	}

	copy(c.dst[c.op:], c.src[c.anchor:c.anchor+literalLength])
	c.op += literalLength

	// #nosec G115 -- offset is bounded by the window, well inside uint32.
	binary.LittleEndian.PutUint32(c.dst[c.op:], uint32(offset))
	c.op += offsetSize

	if storedMatchLength >= mlMask {
		c.dst[tokenAt] |= mlMask
		c.putLengthTail(storedMatchLength - mlMask)
	} else {
		c.dst[tokenAt] |= byte(storedMatchLength)
	}

	return nil
}

// emitTrailingRun serializes the final literal-only run: token + extension +
// literals, no offset, no match length. The decoder recognizes it by input
// exhaustion after the literals.
func (c *ldmCompressor) emitTrailingRun() error {
	literalLength := len(c.src) - c.anchor

	need := 1 + literalLength
	if literalLength >= runMask {
		need += lengthTailSize(literalLength - runMask)
	}
	if c.op+need > len(c.dst) {
		return ErrOutputTooSmall
	}

	tokenAt := c.op
	c.op++

	if literalLength >= runMask {
		c.dst[tokenAt] = runMask << mlBits
		c.putLengthTail(literalLength - runMask)
	} else {
		c.dst[tokenAt] = byte(literalLength) << mlBits
	}

	copy(c.dst[c.op:], c.src[c.anchor:])
	c.op += literalLength

	return nil
}
