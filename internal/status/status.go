// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package status renders conversion progress and outcomes on a terminal.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/convert-hub/pkg/types"
)

const barWidth = 40

var (
	busy    = color.New(color.FgBlue)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
)

// Terminal is a convert.Reporter that draws a progress bar in place and
// prints a colored status line when the run finishes.
type Terminal struct {
	w     io.Writer
	quiet bool
	drawn bool
}

// NewTerminal returns a reporter writing to w. When quiet is set only the
// final status line is printed.
func NewTerminal(w io.Writer, quiet bool) *Terminal {
	return &Terminal{w: w, quiet: quiet}
}

// Progress redraws the bar for percent.
func (t *Terminal) Progress(percent int) {
	if t.quiet {
		return
	}
	if !t.drawn {
		busy.Fprintln(t.w, "Converting...")
		t.drawn = true
	}
	filled := percent * barWidth / 100
	fmt.Fprintf(t.w, "\r[%s%s] %3d%%", strings.Repeat("=", filled), strings.Repeat(" ", barWidth-filled), percent)
}

// Finish ends the bar line and prints the outcome.
func (t *Terminal) Finish(res types.ConversionResult) {
	if t.drawn {
		fmt.Fprintln(t.w)
		t.drawn = false
	}
	Print(t.w, res)
}

// Print writes the result's message in the color for its status.
func Print(w io.Writer, res types.ConversionResult) {
	Line(w, res.Status, res.Message)
}

// Line writes msg colored for status.
func Line(w io.Writer, status types.ConversionStatus, msg string) {
	switch status {
	case types.StatusSuccess:
		success.Fprintln(w, msg)
	case types.StatusEmptyInput:
		warning.Fprintln(w, msg)
	default:
		failure.Fprintln(w, msg)
	}
}

// Info writes an informational line, such as a loaded or saved path.
func Info(w io.Writer, format string, args ...any) {
	success.Fprintf(w, format+"\n", args...)
}

// Warn writes a warning line.
func Warn(w io.Writer, format string, args ...any) {
	warning.Fprintf(w, format+"\n", args...)
}
