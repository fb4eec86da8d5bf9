// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ldm

// Command ldm compresses and decompresses files in the LDM container format:
// a 16-byte size header followed by the long-distance matching payload.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:          "ldm",
		Short:        "Long-distance matching pre-compressor",
		Long:         "ldm removes long-range redundancy from files using a 128 MiB match window.\nThe output is raw LZ intended for a short-window entropy coder downstream.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(getCompressCmd(), getDecompressCmd(), getVersionCmd())

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func getVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ldm v" + version)
		},
	}
}
