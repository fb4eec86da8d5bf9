// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woozymasta/ldm"
)

func getDecompressCmd() *cobra.Command {
	var (
		entropy bool
		verify  string
	)

	cmd := &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress an LDM container into a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			compressedSize, decompressedSize, err := ldm.ReadHeader(raw)
			if err != nil {
				return err
			}

			payload := raw[ldm.HeaderSize:]
			if uint64(len(payload)) != compressedSize {
				return fmt.Errorf("container: payload is %d bytes, header says %d", len(payload), compressedSize)
			}
			if decompressedSize > math.MaxInt-1 {
				return fmt.Errorf("container: decompressed size %d not addressable", decompressedSize)
			}

			if entropy {
				payload, err = inflate(payload)
				if err != nil {
					return err
				}
			}

			out, err := ldm.Decompress(payload, ldm.DefaultDecompressOptions(int(decompressedSize)))
			if err != nil {
				return err
			}

			if verify != "" {
				if err := verifyDigest(out, verify); err != nil {
					return err
				}
			}

			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"in":  humanize.IBytes(uint64(len(raw))),
				"out": humanize.IBytes(uint64(len(out))),
			}).Info("decompressed")

			return nil
		},
	}

	cmd.Flags().BoolVar(&entropy, "entropy", false, "payload was post-compressed with DEFLATE")
	cmd.Flags().StringVar(&verify, "verify", "", "expected xxh64 digest of the output (as printed by compress --verify)")

	return cmd
}

// verifyDigest recomputes the xxh64 digest of the decompressed output and
// compares it against the hex digest recorded at compression time.
func verifyDigest(out []byte, want string) error {
	expected, err := strconv.ParseUint(want, 16, 64)
	if err != nil {
		return fmt.Errorf("verify: bad digest %q: %w", want, err)
	}

	got := xxhash.Sum64(out)
	if got != expected {
		return fmt.Errorf("verify: digest mismatch: got %016x, want %016x", got, expected)
	}

	logrus.WithField("xxh64", fmt.Sprintf("%016x", got)).Info("digest verified")

	return nil
}

func inflate(p []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(p))
	defer r.Close() //nolint:errcheck

	return io.ReadAll(r)
}
