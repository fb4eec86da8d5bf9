// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woozymasta/ldm"
)

func getCompressCmd() *cobra.Command {
	var (
		withStats bool
		entropy   bool
		verify    bool
	)

	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file into an LDM container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var stats ldm.CompressStats
			opts := &ldm.CompressOptions{}
			if withStats {
				opts.Stats = &stats
			}

			payload, err := ldm.Compress(src, opts)
			if err != nil {
				return err
			}

			if verify {
				if err := selfCheck(payload, src); err != nil {
					return err
				}
			}

			if entropy {
				payload, err = deflate(payload)
				if err != nil {
					return err
				}
			}

			out := ldm.AppendHeader(make([]byte, 0, ldm.HeaderSize+len(payload)), uint64(len(payload)), uint64(len(src)))
			out = append(out, payload...)

			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return err
			}

			log := logrus.WithFields(logrus.Fields{
				"in":  humanize.IBytes(uint64(len(src))),
				"out": humanize.IBytes(uint64(len(out))),
			})
			if len(src) > 0 {
				log = log.WithField("ratio", fmt.Sprintf("%.3f", float64(len(out))/float64(len(src))))
			}
			log.Info("compressed")

			if withStats {
				fmt.Print(stats.String())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withStats, "stats", false, "print compression statistics")
	cmd.Flags().BoolVar(&entropy, "entropy", false, "post-compress the payload with DEFLATE (short-window entropy stage)")
	cmd.Flags().BoolVar(&verify, "verify", false, "decompress the payload again and compare digests before writing")

	return cmd
}

// selfCheck round-trips the payload and compares content digests.
func selfCheck(payload, src []byte) error {
	out, err := ldm.Decompress(payload, ldm.DefaultDecompressOptions(len(src)))
	if err != nil {
		return fmt.Errorf("self-check decompress: %w", err)
	}

	digest := xxhash.Sum64(src)
	if xxhash.Sum64(out) != digest {
		return errors.New("self-check digest mismatch")
	}

	logrus.WithField("xxh64", fmt.Sprintf("%016x", digest)).Info("self-check passed")

	return nil
}

func deflate(p []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestSpeed)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
