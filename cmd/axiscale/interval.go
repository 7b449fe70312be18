// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/axiscale/temporal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var intervalCmd = &cobra.Command{
	Use:   "interval <span>",
	Short: "Pick the date grid interval for a span",
	Long: `interval prints the calendar interval a date axis would use to cover
span (a Go duration such as 72h or 90m) with --grid lines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		span, err := time.ParseDuration(args[0])
		if err != nil {
			return err
		}
		if span <= 0 {
			return fmt.Errorf("span %v must be positive", span)
		}
		grid := viper.GetInt("grid")
		if grid < 1 {
			return fmt.Errorf("--grid %d must be >= 1", grid)
		}
		g := temporal.New().Interval(float64(span/time.Millisecond), grid)
		fmt.Fprintln(cmd.OutOrStdout(), g)
		return nil
	},
}

func init() {
	intervalCmd.Flags().Int("grid", 5, "Number of grid lines to aim for")
	_ = viper.BindPFlags(intervalCmd.Flags())
}
