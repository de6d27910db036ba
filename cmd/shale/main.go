// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shale [command] (flags)",
	Short: "shale configuration introspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		dumpCmd,
		validateCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
