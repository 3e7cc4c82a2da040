// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the keyword-discovery CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/keyword-discovery/internal/logging"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured from the log flags before any command runs.
var logger = zerolog.Nop()

// rootCmd is the base command for the keyword-discovery CLI.
var rootCmd = &cobra.Command{
	Use:   "keyword-discovery",
	Short: "Discover and classify search keywords from autocomplete services",
	Long: `keyword-discovery expands a seed keyword through the autocomplete endpoints
of Google, YouTube, Bing, Yahoo, Amazon and eBay, keeps the suggestions that
contain every word of the seed, and sorts them into transactional, commercial
and informational intent with ad-targeting advice.

Run a discovery with expand, re-render saved runs with report, browse stored
runs with history, or start the web dashboard with serve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logConfig(cmd))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./keyword-discovery.yaml or ~/.config/keyword-discovery/keyword-discovery.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")
	rootCmd.PersistentFlags().String("log-file", "stderr", "log destination: stderr, stdout, or a file path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("keyword-discovery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "keyword-discovery"))
		}
	}

	viper.SetEnvPrefix("KEYWORD_DISCOVERY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func logConfig(cmd *cobra.Command) types.LogConfig {
	return types.LogConfig{
		Level:  stringSetting(cmd, "log-level", "log.level"),
		Format: stringSetting(cmd, "log-format", "log.format"),
		Output: stringSetting(cmd, "log-file", "log.output"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
