// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-hub/internal/convert"
	"github.com/pdiddy/convert-hub/pkg/types"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and the pairs with conversion rules",
	Run: func(cmd *cobra.Command, args []string) {
		printLanguages(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func printLanguages(w io.Writer) {
	fmt.Fprintf(w, "%-8s  %s\n", "Language", "Extension")
	for _, l := range types.Languages {
		fmt.Fprintf(w, "%-8s  %s\n", l, l.Extension())
	}

	fmt.Fprintln(w, "\nPairs with conversion rules:")
	for _, p := range convert.HandledPairs() {
		fmt.Fprintf(w, "  %s\n", p)
	}
	fmt.Fprintln(w, "\nAll other pairs pass the source through unchanged.")
}
