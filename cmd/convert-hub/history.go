// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-hub/internal/history"
	"github.com/pdiddy/convert-hub/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, export, or clear recorded conversion runs",
	Long: `History manages the local SQLite database of conversion runs recorded by
convert, batch, and watch.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversion runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, opts, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatHistoryOutput(w io.Writer, entries []types.HistoryEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-12s  %-11s  %-30s  %s\n", "Time", "Pair", "Status", "Source", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		pair := string(e.SourceLang) + " → " + string(e.TargetLang)
		src := e.SourcePath
		if src == "" {
			src = "(stdin)"
		}
		if len(src) > 30 {
			src = "..." + src[len(src)-27:]
		}
		fmt.Fprintf(w, "%-20s  %-12s  %-11s  %-30s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), pair, e.Status, src, e.OutputPath)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to YAML or JSON",
	Long: `Export writes every recorded run (or a filtered subset) as YAML or JSON to
stdout, or to the file given by --output.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	store, opts, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}
	return store.Export(context.Background(), opts, format, w)
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := historyStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs.\n", n)
		return nil
	},
}

// historyStore opens the store regardless of history.enabled and builds
// query options from the filter flags.
func historyStore(cmd *cobra.Command) (*history.Store, history.QueryOptions, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, history.QueryOptions{}, err
	}
	opts, err := historyQueryFromFlags(cmd)
	if err != nil {
		return nil, opts, err
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, opts, err
	}
	return store, opts, nil
}

func historyQueryFromFlags(cmd *cobra.Command) (history.QueryOptions, error) {
	var opts history.QueryOptions
	st, _ := cmd.Flags().GetString("status")
	switch types.ConversionStatus(st) {
	case "", types.StatusSuccess, types.StatusEmptyInput, types.StatusError:
		opts.Status = types.ConversionStatus(st)
	default:
		return opts, fmt.Errorf("unknown status %q: use success, empty_input, or error", st)
	}

	var err error
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		if opts.SourceLang, err = parseLanguage(from); err != nil {
			return opts, err
		}
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		if opts.TargetLang, err = parseLanguage(to); err != nil {
			return opts, err
		}
	}
	opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	return opts, nil
}

func init() {
	// Shared filter flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("status", "", "filter by status: success, empty_input, error")
	historyCmd.PersistentFlags().String("from", "", "filter by source language")
	historyCmd.PersistentFlags().String("to", "", "filter by target language")
	historyCmd.PersistentFlags().Int("limit", 0, "maximum runs (0 = default for list, all for export)")

	historyListCmd.Flags().Bool("json", false, "output runs as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("output", "", "write to this file instead of stdout")

	// Wire subcommands.
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
