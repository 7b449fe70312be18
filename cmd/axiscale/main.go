// SPDX-License-Identifier: MIT

// Command axiscale builds the axes described by a YAML or TOML file and
// prints their grid, or picks a date grid interval for a span.
//
// Every flag can also be set through an AXISCALE_ environment variable
// (AXISCALE_CONFIG, AXISCALE_LOG_LEVEL, ...).
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at link time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "axiscale",
	Short: "Headless axis scales: ranges, grids and coordinates",
	Long: `axiscale resolves value, date, category and duration axes from a
configuration file and prints the adjusted range and grid of every axis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString("log-level"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Usage()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the axiscale version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "axiscale "+Version)
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().String("config", "", "Axis configuration file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level (debug, info, warning, error)")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	viper.SetEnvPrefix("AXISCALE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCmd, ticksCmd, intervalCmd)
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetLevel(lvl)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
