// seehuhn.de/go/chart - a 2D chart rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Chartdemo renders a set of example charts to PNG or PDF files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/chart"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chartdemo [demo...]",
		Short: "Render example charts",
		Long: heredoc.Docf(`
			Render example charts to image files, one file per demo.

			Available demos: %s.  Without arguments, all demos are rendered.
			Every flag can also be set through an environment variable with
			the prefix CHARTDEMO_, for example CHARTDEMO_FORMAT=pdf.
		`, strings.Join(demoNames(), ", ")),
		Example: heredoc.Doc(`
			# Render all demos as PNG files into the current directory
			$ chartdemo

			# Render the histogram demo as PDF
			$ chartdemo --format pdf --out /tmp histogram
		`),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}

	cmd.Flags().StringP("out", "o", ".", "Output directory")
	cmd.Flags().StringP("format", "f", "png", "Output format, png or pdf")
	cmd.Flags().Int("width", 600, "Image width in pixels")
	cmd.Flags().Int("height", 400, "Image height in pixels")
	cmd.Flags().String("font", "", "Font family for titles and labels")
	cmd.Flags().BoolP("verbose", "v", false, "Log diagnostics")

	viper.SetEnvPrefix("CHARTDEMO")
	viper.AutomaticEnv()

	return cmd
}

func run(names []string) error {
	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
		l := log.WithPrefix("chart")
		l.SetLevel(log.DebugLevel)
		chart.SetLogger(l)
	}

	format := strings.ToLower(viper.GetString("format"))
	if format != "png" && format != "pdf" {
		return fmt.Errorf("unsupported format %q", format)
	}
	outDir := viper.GetString("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if len(names) == 0 {
		names = demoNames()
	}
	for _, name := range names {
		d, ok := findDemo(name)
		if !ok {
			return fmt.Errorf("unknown demo %q", name)
		}
		fname := filepath.Join(outDir, d.name+"."+format)
		if err := render(d, fname, format); err != nil {
			return err
		}
		log.Info("wrote chart", "demo", d.name, "file", fname)
	}
	return nil
}

func render(d demo, fname, format string) error {
	cfg := chart.DefaultFigureConfig()
	cfg.Title = d.title
	cfg.Width = viper.GetInt("width")
	cfg.Height = viper.GetInt("height")
	cfg.Rows, cfg.Cols = d.rows, d.cols
	cfg.FontFamily = viper.GetString("font")

	f := chart.NewFigure(cfg)
	d.build(f)

	if format == "pdf" {
		if err := f.WritePDF(fname); err != nil {
			return fmt.Errorf("demo %s: %w", d.name, err)
		}
		return nil
	}

	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("demo %s: %w", d.name, err)
	}
	if err := f.WritePNG(out); err != nil {
		out.Close()
		return fmt.Errorf("demo %s: %w", d.name, err)
	}
	return out.Close()
}
