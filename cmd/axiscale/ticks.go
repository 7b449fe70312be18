// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/axiscale/axis"
	"github.com/katalvlaran/axiscale/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoConfig = errors.New("no configuration file: pass --config or set AXISCALE_CONFIG")

var ticksCmd = &cobra.Command{
	Use:   "ticks [axis...]",
	Short: "Print the range and grid items of the configured axes",
	Long: `ticks loads the configuration file, builds every axis and series in it
and prints each axis range followed by one line per grid item. Naming axes
restricts the output to them. --zoom applies the same window to every
printed axis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("config")
		if path == "" {
			return errNoConfig
		}
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		chart, err := config.BuildAll(f, log.StandardLogger())
		if err != nil {
			return err
		}

		axes := chart.Axes
		if len(args) > 0 {
			axes = nil
			for _, name := range args {
				a, ok := chart.Axis(name)
				if !ok {
					return fmt.Errorf("axis %q is not configured", name)
				}
				axes = append(axes, a)
			}
		}

		zoom, err := cmd.Flags().GetFloat64Slice("zoom")
		if err != nil {
			return err
		}
		if len(zoom) != 0 && len(zoom) != 2 {
			return fmt.Errorf("--zoom needs start,end, got %v", zoom)
		}
		for _, a := range axes {
			if len(zoom) == 2 {
				if err := a.Zoom(zoom[0], zoom[1]); err != nil {
					return err
				}
			}
			if err := printAxis(cmd.OutOrStdout(), a, viper.GetBool("hidden")); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	ticksCmd.Flags().Float64Slice("zoom", nil, "Zoom window as start,end in [0,1]")
	ticksCmd.Flags().Bool("hidden", false, "Also print items whose label is thinned out")
	_ = viper.BindPFlags(ticksCmd.Flags())
}

// printAxis writes the header line of a followed by a table of its items.
func printAxis(w io.Writer, a *axis.Axis, hidden bool) error {
	items, err := a.DataItems()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%v) %v zoomed [%g, %g]\n", a.Name(), a.Kind(), a.Range(), a.MinZoomed(), a.MaxZoomed())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  VALUE\tPOSITION\tCOORD\tKIND\tLABEL")
	for _, it := range items {
		if !it.Visible && !hidden {
			continue
		}
		fmt.Fprintf(tw, "  %g\t%.4f\t%.1f\t%v\t%s\n", it.Value, it.ZoomedPosition, it.Coordinate, it.Kind, it.Label)
	}
	return tw.Flush()
}
