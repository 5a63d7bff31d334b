// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-hub/internal/convert"
	"github.com/pdiddy/convert-hub/internal/status"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert a single source file or stdin",
	Long: `Convert reads one source file (or stdin when the argument is "-" or
omitted), converts it, and saves the result as <name>_converted<ext> in the
output directory. The source language is detected from the file extension
unless --from is given: .c is C, .cpp/.hpp/.h are C++, .cs is C#.

Input read from stdin is written to stdout unless --output-name is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	addConversionFlags(convertCmd)
	convertCmd.Flags().String("output-name", "", "output file name without extension (default: <source>_converted)")
	convertCmd.Flags().Bool("stdout", false, "write converted code to stdout instead of a file")
	convertCmd.Flags().BoolP("quiet", "q", false, "suppress the progress bar")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, cfg, err := conversionOptions(cmd)
	if err != nil {
		return err
	}
	opts.OutputName, _ = cmd.Flags().GetString("output-name")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var src convert.Source
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		src = convert.Source{Text: string(data)}
		if opts.OutputName == "" {
			toStdout = true
		}
	} else {
		if src, err = convert.LoadSource(args[0]); err != nil {
			return err
		}
		if !quiet {
			status.Info(cmd.ErrOrStderr(), "Loaded: %s", args[0])
		}
	}

	req := opts.Request(src)
	name := opts.OutputName
	if name == "" {
		name = src.OutputName
	}
	outPath := convert.OutputPath(opts.OutputDir, name, req.TargetLang)

	if !toStdout && !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			status.Warn(cmd.ErrOrStderr(), "skipped: %s already exists (use --force to overwrite)", outPath)
			return nil
		}
	}

	store := openHistory(cfg.History)
	if store != nil {
		defer store.Close()
	}

	res := convert.Runner{}.Run(req, status.NewTerminal(cmd.ErrOrStderr(), quiet))
	if !res.OK() {
		recordRun(context.Background(), store, req, res, src.Path, "")
		return errConversionFailed
	}

	if toStdout {
		recordRun(context.Background(), store, req, res, src.Path, "")
		_, err := io.WriteString(cmd.OutOrStdout(), res.OutputText)
		return err
	}

	path, err := convert.SaveResult(res, opts.OutputDir, name, req.TargetLang)
	if err != nil {
		return err
	}
	recordRun(context.Background(), store, req, res, src.Path, path)
	status.Info(cmd.ErrOrStderr(), "Saved: %s", path)
	return nil
}
