// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rustmark CLI.
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

// rootCmd is the base command for the rustmark CLI.
var rootCmd = &cobra.Command{
	Use:   "rustmark",
	Short: "Documentation toolkit for Rust projects",
	Long: `rustmark builds prose documentation for Rust projects. Doc sources use a
reStructuredText subset; a built-in extension adds directives and roles for
Rust object types (crate, module, struct, enum, enum variant, type alias,
static) so prose can declare identifiers, cross-reference them, and have
them collected into a searchable object index.

Each operation is a subcommand: build renders pages and populates the
index, objects lists the registered object types, search queries the
index, and export writes it out.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rustmark.yaml or ~/.config/rustmark/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rustmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rustmark"))
		}
	}

	viper.SetEnvPrefix("RUSTMARK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a setting from flag, then config, then fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// intSetting resolves an integer setting from flag, then config, then fallback.
func intSetting(cmd *cobra.Command, flag, key string, fallback int) int {
	if v, _ := cmd.Flags().GetInt(flag); v > 0 {
		return v
	}
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
