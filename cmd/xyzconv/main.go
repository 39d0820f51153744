// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the xyzconv CLI, a survey-point
// format converter between SDR33 instrument dumps and delimited text
// formats (TXT, PNT, CSV).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adlenadlen/xyzconv/internal/loader"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the xyzconv CLI.
var rootCmd = &cobra.Command{
	Use:   "xyzconv",
	Short: "Convert survey point files between SDR33, TXT, PNT, and CSV",
	Long: `xyzconv converts geodetic point lists between the fixed-width SDR33
instrument dump format and delimited text formats (TXT, PNT, CSV),
normalizing every input into one canonical point model before
re-serializing it under the chosen delimiter and coordinate order.

Input files are decoded with an encoding fallback chain (UTF-8, then
legacy code pages), so dumps from older field software load without
manual re-encoding.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./xyzconv.yaml or ~/.config/xyzconv/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("xyzconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "xyzconv"))
		}
	}

	viper.SetDefault("defaults.delimiter", string(types.DelimiterComma))
	viper.SetDefault("defaults.order", string(types.OrderNorthEast))
	viper.SetDefault("encodings", loader.DefaultEncodings)
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.path", filepath.Join(".xyzconv", "history.db"))

	viper.SetEnvPrefix("XYZCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newReader builds the encoding-fallback file reader from configuration.
func newReader() (*loader.Reader, error) {
	return loader.New(viper.GetStringSlice("encodings"))
}

// delimiterOption resolves a delimiter flag value, falling back to the
// configured default when the flag was not given. An empty result is left
// for the engine to reject if the format requires the option.
func delimiterOption(s string) (types.Delimiter, error) {
	if s == "" {
		s = viper.GetString("defaults.delimiter")
	}
	if s == "" {
		return "", nil
	}
	return types.DelimiterFromString(s)
}

// orderOption resolves a coordinate order flag value, falling back to the
// configured default when the flag was not given.
func orderOption(s string) (types.CoordinateOrder, error) {
	if s == "" {
		s = viper.GetString("defaults.order")
	}
	if s == "" {
		return "", nil
	}
	return types.OrderFromString(s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
