// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-hub/internal/convert"
	"github.com/pdiddy/convert-hub/internal/history"
	"github.com/pdiddy/convert-hub/pkg/types"
)

// conversionFlags maps each shared conversion flag to its config key.
var conversionFlags = map[string]string{
	"from":              "conversion.from",
	"to":                "conversion.to",
	"preserve-comments": "conversion.preserve_comments",
	"convert-oop":       "conversion.convert_oop",
	"optimize":          "conversion.optimize",
	"include-metadata":  "conversion.include_metadata",
	"output-dir":        "conversion.output_dir",
	"force":             "conversion.force",
}

// addConversionFlags registers the flags shared by convert, batch, and watch.
func addConversionFlags(cmd *cobra.Command) {
	d := types.DefaultSettings()
	cmd.Flags().String("from", "", "source language: C, C++, or C# (default: detect from extension, else C)")
	cmd.Flags().String("to", string(types.LangCPP), "target language: C, C++, or C#")
	cmd.Flags().Bool("preserve-comments", d.PreserveComments, "preserve comments")
	cmd.Flags().Bool("convert-oop", d.ConvertOOP, "convert OOP constructs")
	cmd.Flags().Bool("optimize", d.Optimize, "optimize code")
	cmd.Flags().Bool("include-metadata", d.IncludeMetadata, "include conversion metadata")
	cmd.Flags().String("output-dir", ".", "directory for converted files")
	cmd.Flags().Bool("force", false, "overwrite existing output files")
}

// bindConversionFlags binds cmd's conversion flags to their config keys.
// Binding happens at run time because several commands share the keys.
func bindConversionFlags(cmd *cobra.Command) error {
	for flag, key := range conversionFlags {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", flag, err)
		}
	}
	return nil
}

// conversionOptions binds cmd's flags and builds convert.Options from the
// merged configuration.
func conversionOptions(cmd *cobra.Command) (convert.Options, types.AppConfig, error) {
	if err := bindConversionFlags(cmd); err != nil {
		return convert.Options{}, types.AppConfig{}, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return convert.Options{}, cfg, err
	}

	opts := convert.Options{
		Settings:  cfg.Conversion.Settings,
		OutputDir: cfg.Conversion.OutputDir,
		Force:     cfg.Conversion.Force,
	}
	if cfg.Conversion.From != "" {
		if opts.From, err = parseLanguage(cfg.Conversion.From); err != nil {
			return opts, cfg, err
		}
	}
	if opts.To, err = parseLanguage(cfg.Conversion.To); err != nil {
		return opts, cfg, err
	}
	return opts, cfg, nil
}

// parseLanguage wraps types.ParseLanguage with a did-you-mean suggestion.
func parseLanguage(name string) (types.Language, error) {
	lang, err := types.ParseLanguage(name)
	if err == nil {
		return lang, nil
	}
	if s := suggestLanguage(name); s != "" {
		return "", fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return "", fmt.Errorf("%w (supported: C, C++, C#)", err)
}

// suggestLanguage returns the closest accepted language name, or "".
func suggestLanguage(name string) string {
	matches := fuzzy.Find(strings.ToLower(name), types.LanguageNames())
	if len(matches) == 0 {
		return ""
	}
	lang, err := types.ParseLanguage(matches[0].Str)
	if err != nil {
		return matches[0].Str
	}
	return string(lang)
}

// openHistory opens the history store, or returns nil when history is
// disabled or cannot be opened.
func openHistory(cfg types.HistoryConfig) *history.Store {
	if !cfg.Enabled {
		return nil
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		logrus.WithError(err).Warn("history disabled")
		return nil
	}
	return store
}

// recordRun stores a finished run. A nil store is a no-op.
func recordRun(ctx context.Context, store *history.Store, req types.ConversionRequest, res types.ConversionResult, srcPath, outPath string) {
	if store == nil {
		return
	}
	if _, err := store.Record(ctx, history.NewEntry(req, res, srcPath, outPath)); err != nil {
		logrus.WithError(err).Warn("recording history")
	}
}

// recordOutcome stores a file outcome. Skipped files are not recorded.
func recordOutcome(ctx context.Context, store *history.Store, o convert.FileOutcome) {
	switch o.Status {
	case convert.FileSkipped:
		return
	case convert.FileFailed:
		if o.Result.Status == "" {
			o.Result = types.ConversionResult{Status: types.StatusError, Message: errString(o.Err)}
		}
	}
	outPath := o.OutputPath
	if o.Status != convert.FileConverted {
		outPath = ""
	}
	recordRun(ctx, store, o.Request, o.Result, o.Path, outPath)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// errConversionFailed is returned by commands after the failure has already
// been reported to the user.
var errConversionFailed = errors.New("conversion failed")
