// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the convert-hub CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-hub/internal/convert"
	"github.com/pdiddy/convert-hub/internal/logging"
	"github.com/pdiddy/convert-hub/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// closeLog releases the log file opened by PersistentPreRunE.
var closeLog = func() {}

// rootCmd is the base command for the convert-hub CLI.
var rootCmd = &cobra.Command{
	Use:   "convert-hub",
	Short: "Convert source code between C, C++, and C#",
	Long: `convert-hub converts source files between C, C++, and C#.

Conversion is a literal-substitution pass: C to C++ rewrites "typedef struct"
and free functions named some_function, C# to C++ rewrites "public class" and
Console.WriteLine. Every other pair is passed through under a comment banner
recording the chosen options.

Use convert for a single file or stdin, batch for many files, and watch to
re-convert a directory as files change. Runs are recorded in a local history
database; see the history command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		closeLog = logging.Init(cfg.Log)
		if f := viper.ConfigFileUsed(); f != "" {
			logrus.WithField("file", f).Debug("using config file")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convert-hub.yaml or ~/.config/convert-hub/convert-hub.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convert-hub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convert-hub"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("CONVERT_HUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

func setDefaults() {
	d := types.DefaultSettings()
	viper.SetDefault("conversion.from", "")
	viper.SetDefault("conversion.to", string(types.LangCPP))
	viper.SetDefault("conversion.preserve_comments", d.PreserveComments)
	viper.SetDefault("conversion.convert_oop", d.ConvertOOP)
	viper.SetDefault("conversion.optimize", d.Optimize)
	viper.SetDefault("conversion.include_metadata", d.IncludeMetadata)
	viper.SetDefault("conversion.output_dir", ".")
	viper.SetDefault("conversion.force", false)

	viper.SetDefault("watch.debounce", convert.DefaultDebounce)

	viper.SetDefault("log.level", logging.DefaultLevel.String())
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "stderr")

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.dir", defaultHistoryDir())
	viper.SetDefault("history.max_results", 20)
}

// defaultHistoryDir follows the XDG data directory convention.
func defaultHistoryDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "convert-hub")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".convert-hub"
	}
	return filepath.Join(home, ".local", "share", "convert-hub")
}

// loadConfig decodes the merged viper configuration.
func loadConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
