// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chartdump lays out a YAML chart document and prints the resulting
// drawing primitives as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kofi-q/plllots-go"
	"github.com/kofi-q/plllots-go/ttf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	themePath  string
	fontPath   string
	pretty     bool
	verbose    bool
	dumpTheme  bool
	workers    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartdump [chart.yaml]",
		Short: "Lay out a chart and print its drawing primitives",
		Long: `chartdump reads a YAML chart document, computes axis scales, ticks,
labels and series geometry, and outputs the drawing primitives as JSON.`,
		Args:         cobra.RangeArgs(0, 1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme applied over the default theme")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TrueType font used to measure labels (default: Go Regular)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log layout decisions to stderr")
	rootCmd.Flags().BoolVar(&dumpTheme, "dump-theme", false, "Print the default theme as YAML and exit")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Goroutines used to downsample large series (default: from chart)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if dumpTheme {
		return plllots.EncodeTheme(cmd.OutOrStdout(), plllots.DefaultTheme())
	}
	if len(args) == 0 {
		return fmt.Errorf("missing chart document")
	}

	chart, err := readChart(args[0])
	if err != nil {
		return err
	}
	chart.Logger = log

	if themePath != "" {
		chart.Theme, err = readTheme(themePath)
		if err != nil {
			return err
		}
	}

	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		fonts := ttf.NewFontSet(1)
		if _, err := fonts.AddTtf(fontPath, ttf.StyleNone, data); err != nil {
			return err
		}
		chart.Measurer = fonts
	}

	if workers > 0 {
		chart.Workers = workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prims, err := chart.GeneratePrimitivesContext(ctx)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}
	log.WithField("primitives", len(prims)).Debug("layout complete")

	jsonData, err := plllots.MarshalPrimitives(prims, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func readChart(path string) (*plllots.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart: %w", err)
	}
	defer f.Close()

	return plllots.DecodeChart(f)
}

func readTheme(path string) (*plllots.Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}
	defer f.Close()

	return plllots.DecodeTheme(f)
}
