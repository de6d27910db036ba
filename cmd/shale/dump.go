// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/shaledb/shale"
	"github.com/spf13/cobra"
)

var dumpConfig struct {
	presets      []string
	budget       uint64
	cacheSizeMB  uint64
	threads      int
	majorVersion int
	minorVersion int
}

var dumpCmd = &cobra.Command{
	Use:   "dump (flags)",
	Short: "print the effective configuration after applying presets",
	Long: `
Builds a default configuration, applies the requested workload presets in
order, and prints the resulting option set line by line, exactly as the
engine would log it on open.
`,
	RunE: runDump,
}

var validateCmd = &cobra.Command{
	Use:   "validate (flags)",
	Short: "check a preset combination for structural consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := buildOptions()
		if err != nil {
			return err
		}
		if err := o.Validate(); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{dumpCmd, validateCmd} {
		cmd.Flags().StringSliceVar(
			&dumpConfig.presets, "preset", nil,
			"presets to apply in order: bulk-load, small-db, point-lookup, "+
				"level-style, universal-style, parallelism, old-defaults")
		cmd.Flags().Uint64Var(
			&dumpConfig.budget, "memtable-budget", 0,
			"memtable memory budget in bytes for the compaction-style presets (0 for the default)")
		cmd.Flags().Uint64Var(
			&dumpConfig.cacheSizeMB, "cache-size-mb", 64,
			"block cache size in MB for the point-lookup preset")
		cmd.Flags().IntVar(
			&dumpConfig.threads, "threads", 0,
			"total background threads for the parallelism preset (0 for the default)")
		cmd.Flags().IntVar(
			&dumpConfig.majorVersion, "old-major", 4,
			"major version for the old-defaults preset")
		cmd.Flags().IntVar(
			&dumpConfig.minorVersion, "old-minor", 6,
			"minor version for the old-defaults preset")
	}
}

func buildOptions() (*shale.Options, error) {
	o := shale.DefaultOptions()
	for _, p := range dumpConfig.presets {
		switch p {
		case "bulk-load":
			o.PrepareForBulkLoad()
		case "small-db":
			o.OptimizeForSmallDb()
		case "point-lookup":
			o.OptimizeForPointLookup(dumpConfig.cacheSizeMB)
		case "level-style":
			o.OptimizeLevelStyleCompaction(dumpConfig.budget)
		case "universal-style":
			o.OptimizeUniversalStyleCompaction(dumpConfig.budget)
		case "parallelism":
			o.IncreaseParallelism(dumpConfig.threads)
		case "old-defaults":
			o.OldDefaults(dumpConfig.majorVersion, dumpConfig.minorVersion)
		default:
			return nil, errors.Newf("unknown preset %q", p)
		}
	}
	return o, nil
}

type stdoutLogger struct{}

func (stdoutLogger) Infof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func (stdoutLogger) Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func runDump(cmd *cobra.Command, args []string) error {
	o, err := buildOptions()
	if err != nil {
		return err
	}
	o.Dump(stdoutLogger{})
	return nil
}
