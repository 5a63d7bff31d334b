// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/convert-hub/pkg/types"
)

const (
	// convertedSuffix is appended to the source basename for output files.
	convertedSuffix = "_converted"
	// defaultOutputName is used when neither the caller nor the source
	// supplies a name.
	defaultOutputName = "converted"
)

// ErrNothingToSave is returned by SaveResult when there is no output text.
var ErrNothingToSave = errors.New("no converted code to save")

// Source is a loaded source file.
type Source struct {
	Path string
	Text string

	// Lang is the language detected from the extension; empty when the
	// extension is not recognized.
	Lang types.Language

	// OutputName is the default output basename, "<base>_converted".
	OutputName string
}

// LoadSource reads a source file and detects its language from the
// extension.
func LoadSource(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading source %s: %w", path, err)
	}
	lang, _ := types.DetectLanguage(path)
	return Source{
		Path:       path,
		Text:       string(data),
		Lang:       lang,
		OutputName: OutputName(path),
	}, nil
}

// OutputName returns the default output basename for a source path.
func OutputName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + convertedSuffix
}

// OutputPath joins dir, name, and the target extension. Empty dir means the
// current directory and empty name means "converted".
func OutputPath(dir, name string, target types.Language) string {
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = defaultOutputName
	}
	return filepath.Join(dir, name+target.Extension())
}

// SaveResult writes the result's output text to dir/name + target extension
// and returns the path written.
func SaveResult(res types.ConversionResult, dir, name string, target types.Language) (string, error) {
	if res.OutputText == "" {
		return "", ErrNothingToSave
	}
	path := OutputPath(dir, name, target)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(res.OutputText), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Options configures file conversion.
type Options struct {
	// From forces the source language. Empty means detect from the file
	// extension, falling back to C.
	From types.Language

	// To is the target language.
	To types.Language

	Settings types.Settings

	// OutputDir is where output files are written.
	OutputDir string

	// OutputName overrides the output basename. Only meaningful for a
	// single file.
	OutputName string

	// Force overwrites existing outputs.
	Force bool
}

// Request builds the ConversionRequest for a loaded source.
func (o Options) Request(src Source) types.ConversionRequest {
	from := o.From
	if from == "" {
		from = src.Lang
	}
	if from == "" {
		from = types.LangC
	}
	to := o.To
	if to == "" {
		to = types.LangCPP
	}
	return types.ConversionRequest{
		SourceText: src.Text,
		SourceLang: from,
		TargetLang: to,
		Settings:   o.Settings,
	}
}

// FileStatus is the per-file outcome of a file conversion.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileSkipped   FileStatus = "skipped"
	FileFailed    FileStatus = "failed"
)

// FileOutcome describes what happened to one source file.
type FileOutcome struct {
	Path       string
	OutputPath string
	Status     FileStatus
	Request    types.ConversionRequest
	Result     types.ConversionResult

	// Err is set when Status is FileFailed.
	Err error
}

// ConvertFile loads path, converts it with r, and saves the result. An
// existing output is left alone unless opts.Force is set.
func ConvertFile(r Runner, path string, opts Options, rep Reporter) FileOutcome {
	out := FileOutcome{Path: path}

	src, err := LoadSource(path)
	if err != nil {
		out.Status, out.Err = FileFailed, err
		return out
	}

	out.Request = opts.Request(src)
	name := opts.OutputName
	if name == "" {
		name = src.OutputName
	}
	out.OutputPath = OutputPath(opts.OutputDir, name, out.Request.TargetLang)

	if !opts.Force {
		if _, err := os.Stat(out.OutputPath); err == nil {
			out.Status = FileSkipped
			return out
		}
	}

	out.Result = r.Run(out.Request, rep)
	if !out.Result.OK() {
		out.Status, out.Err = FileFailed, errors.New(out.Result.Message)
		return out
	}

	if _, err := SaveResult(out.Result, opts.OutputDir, name, out.Request.TargetLang); err != nil {
		out.Status, out.Err = FileFailed, err
		return out
	}

	logrus.WithFields(logrus.Fields{
		"source": path,
		"output": out.OutputPath,
		"pair":   out.Request.Pair().String(),
	}).Debug("file converted")
	out.Status = FileConverted
	return out
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Outcomes  []FileOutcome
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each path in order, printing per-file status to w
// and returning a summary. opts.OutputName is ignored so that outputs do
// not collide.
func ConvertBatch(r Runner, paths []string, opts Options, w io.Writer) BatchResult {
	opts.OutputName = ""

	var result BatchResult
	for _, p := range paths {
		o := ConvertFile(r, p, opts, Discard)
		result.Outcomes = append(result.Outcomes, o)
		switch o.Status {
		case FileConverted:
			fmt.Fprintf(w, "converted: %s -> %s\n", p, o.OutputPath)
			result.Converted++
		case FileSkipped:
			fmt.Fprintf(w, "skipped: %s (%s already exists)\n", p, o.OutputPath)
			result.Skipped++
		case FileFailed:
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, o.Err)
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// IsConvertible reports whether path has a recognized source extension and
// is not itself a converted output.
func IsConvertible(path string) bool {
	if _, ok := types.DetectLanguage(path); !ok {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return !strings.HasSuffix(base, convertedSuffix)
}

// CollectSources lists the convertible files directly under dir, sorted by
// name.
func CollectSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsConvertible(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
