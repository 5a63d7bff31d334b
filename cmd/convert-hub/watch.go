// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-hub/internal/convert"
	"github.com/pdiddy/convert-hub/internal/status"
	"github.com/pdiddy/convert-hub/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-convert source files in a directory as they change",
	Long: `Watch monitors a directory and converts each source file whenever it is
created or written, overwriting the previous output. Converted outputs
(*_converted.*) are ignored. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addConversionFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", convert.DefaultDebounce, "quiet period after a change before converting")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlag("watch.debounce", cmd.Flags().Lookup("debounce")); err != nil {
		return err
	}
	opts, cfg, err := conversionOptions(cmd)
	if err != nil {
		return err
	}
	opts.Force = true

	w, err := convert.NewWatcher(args[0], cfg.Watch.Debounce)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openHistory(cfg.History)
	if store != nil {
		defer store.Close()
	}

	out := cmd.OutOrStdout()
	status.Info(out, "Watching %s (Ctrl-C to stop)", args[0])
	return w.Run(ctx, func(path string) {
		o := convert.ConvertFile(convert.Runner{}, path, opts, convert.Discard)
		recordOutcome(ctx, store, o)
		switch o.Status {
		case convert.FileConverted:
			status.Line(out, types.StatusSuccess, "converted: "+path+" -> "+o.OutputPath)
		default:
			status.Line(out, types.StatusError, "failed:  "+path+" ("+errString(o.Err)+")")
		}
	})
}
