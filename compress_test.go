// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package ldm

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/flate"
)

func randomBytes(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	rng.Read(data)
	return data
}

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, ldm test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random-1mib", data: randomBytes(1<<20, 1)},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) == 0 {
				t.Fatal("compressed data empty: trailing run token missing")
			}
			if len(cmp) > CompressBound(len(in.data)) {
				t.Fatalf("compressed size %d exceeds bound %d", len(cmp), CompressBound(len(in.data)))
			}

			out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}

			outReader, err := DecompressFromReader(bytes.NewReader(cmp), DefaultDecompressOptions(len(in.data)))
			if err != nil {
				t.Fatalf("DecompressFromReader failed: %v", err)
			}
			if !bytes.Equal(outReader, in.data) {
				t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
			}

			dst := make([]byte, len(in.data))
			n, err := DecompressInto(dst, cmp)
			if err != nil {
				t.Fatalf("DecompressInto failed: %v", err)
			}
			if !bytes.Equal(dst[:n], in.data) {
				t.Fatalf("DecompressInto mismatch: got=%d want=%d", n, len(in.data))
			}
		})
	}
}

func TestCompress_Deterministic(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpExplicit, err := Compress(data, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress explicit failed: %v", err)
	}

	if !bytes.Equal(cmpDefault, cmpExplicit) {
		t.Fatal("nil options should match DefaultCompressOptions")
	}

	cmpAgain, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress again failed: %v", err)
	}
	if !bytes.Equal(cmpDefault, cmpAgain) {
		t.Fatal("compression should be deterministic")
	}
}

func TestCompressInto_OutputTooSmall(t *testing.T) {
	data := randomBytes(4096, 2)

	if _, err := CompressInto(make([]byte, 2), data, nil); !errors.Is(err, ErrOutputTooSmall) {
		t.Fatalf("expected ErrOutputTooSmall, got %v", err)
	}

	// A bound-sized buffer always succeeds.
	dst := make([]byte, CompressBound(len(data)))
	n, err := CompressInto(dst, data, nil)
	if err != nil {
		t.Fatalf("CompressInto with bound-sized buffer failed: %v", err)
	}

	out, err := Decompress(dst[:n], DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch")
	}
}

func TestCompress_IncompressibleGrowsBounded(t *testing.T) {
	data := randomBytes(1<<16, 3)

	once, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("first Compress failed: %v", err)
	}

	twice, err := Compress(once, nil)
	if err != nil {
		t.Fatalf("second Compress failed: %v", err)
	}

	if len(twice) <= len(once) {
		t.Fatalf("re-compressing incompressible data should grow: %d -> %d", len(once), len(twice))
	}
	if len(twice) > CompressBound(len(once)) {
		t.Fatalf("second pass %d exceeds bound %d", len(twice), CompressBound(len(once)))
	}
}

func TestCompress_EntropyChainRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("long distance matching feeds a short-window entropy coder "), 2048)

	pre, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	var packed bytes.Buffer
	fw, err := flate.NewWriter(&packed, flate.BestSpeed)
	if err != nil {
		t.Fatalf("flate.NewWriter failed: %v", err)
	}
	if _, err := fw.Write(pre); err != nil {
		t.Fatalf("flate write failed: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("flate close failed: %v", err)
	}

	unpacked, err := io.ReadAll(flate.NewReader(bytes.NewReader(packed.Bytes())))
	if err != nil {
		t.Fatalf("inflate failed: %v", err)
	}

	out, err := Decompress(unpacked, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("entropy-chain round-trip mismatch")
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add(randomBytes(4096, 4))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			data = data[:1<<20]
		}

		cmp, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
