// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the datefind CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the datefind CLI.
var rootCmd = &cobra.Command{
	Use:   "datefind",
	Short: "Find and resolve date expressions in free text",
	Long: `datefind scans free text for date-like expressions ("next Friday",
"Nov 13, 1986", "2019-07-01") and resolves each match to an absolute
timestamp. It recognizes a curated set of surface forms and nothing
else, so bare numbers outside a date layout never match.

Instance defaults for returns, prefers, and time_zone come from the
config file or DATEFIND_* environment variables; per-call flags on the
extract command take precedence.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./datefind.yaml or ~/.config/datefind/config.yaml)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("datefind")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "datefind"))
		}
	}

	viper.SetEnvPrefix("DATEFIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
