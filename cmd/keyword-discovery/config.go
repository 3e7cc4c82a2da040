// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// Settings resolve in order: flag given on the command line, config file or
// KEYWORD_DISCOVERY_* environment variable, flag default.

func changed(cmd *cobra.Command, flag string) bool {
	f := cmd.Flags().Lookup(flag)
	return f != nil && f.Changed
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !changed(cmd, flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !changed(cmd, flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !changed(cmd, flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if !changed(cmd, flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

// addExpandFlags registers the flags shared by expand and serve.
func addExpandFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("deep", false, "re-query every discovered term until --max-size (deprecated, slow)")
	cmd.Flags().Int("max-size", expand.DefaultMaxSize, "suggestion set cap in deep mode")
	cmd.Flags().Int("max-deep-queries", 0, "request budget for deep mode (0 = unbounded)")
	cmd.Flags().Duration("timeout", suggest.DefaultTimeout, "per-request timeout")
	cmd.Flags().Int("retries", 0, "retries on HTTP 429 responses")
	cmd.Flags().Duration("delay", 0, "pause between consecutive requests")
	cmd.Flags().Bool("insecure", true, "skip TLS certificate verification")
	cmd.Flags().String("user-agent", suggest.DefaultUserAgent, "User-Agent header for suggestion requests")
	cmd.Flags().String("store", "", "SQLite run history file (empty disables history)")
}

func expandConfig(cmd *cobra.Command) types.ExpandConfig {
	return types.ExpandConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:            durationSetting(cmd, "timeout", "expand.timeout"),
			UserAgent:          stringSetting(cmd, "user-agent", "expand.user_agent"),
			InsecureSkipVerify: boolSetting(cmd, "insecure", "expand.insecure_skip_verify"),
			Retries:            intSetting(cmd, "retries", "expand.retries"),
		},
		Service:        stringSetting(cmd, "service", "expand.service"),
		Deep:           boolSetting(cmd, "deep", "expand.deep"),
		MaxSize:        intSetting(cmd, "max-size", "expand.max_size"),
		MaxDeepQueries: intSetting(cmd, "max-deep-queries", "expand.max_deep_queries"),
		Delay:          durationSetting(cmd, "delay", "expand.delay"),
	}
}

func expandOptions(cfg types.ExpandConfig) expand.Options {
	return expand.Options{
		Deep:           cfg.Deep,
		MaxSize:        cfg.MaxSize,
		MaxDeepQueries: cfg.MaxDeepQueries,
		Delay:          cfg.Delay,
		Logger:         logger,
	}
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	return types.StoreConfig{Path: stringSetting(cmd, "store", "store.path")}
}

// boolSettingDefault reads a config-only setting that has no flag.
func boolSettingDefault(key string, def bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return def
}
