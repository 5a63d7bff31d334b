// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-hub/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert many source files in one run",
	Long: `Batch converts each listed file, or every convertible file directly under
--dir, writing <name>_converted<ext> into the output directory. Files whose
output already exists are skipped unless --force is set. A summary line is
printed at the end and the command fails if any file failed.`,
	RunE: runBatch,
}

func init() {
	addConversionFlags(batchCmd)
	batchCmd.Flags().String("dir", "", "convert every source file in this directory")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	opts, cfg, err := conversionOptions(cmd)
	if err != nil {
		return err
	}

	paths := args
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		found, err := convert.CollectSources(dir)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("provide one or more source files or --dir")
	}

	result := convert.ConvertBatch(convert.Runner{}, paths, opts, cmd.OutOrStdout())

	if store := openHistory(cfg.History); store != nil {
		defer store.Close()
		for _, o := range result.Outcomes {
			recordOutcome(context.Background(), store, o)
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
