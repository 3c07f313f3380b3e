// heatplot renders the hydrogen specific-heat chart headlessly and writes it as PNG or SVG.
//
// With --table it also prints the sampled curve and the model-vs-experiment residuals.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/iafilius/HydrogenSpecificHeat/src/config"
	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
	"github.com/iafilius/HydrogenSpecificHeat/src/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("heatplot", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	table := fs.Bool("table", false, "Print sampled curve and residuals to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	render.SetLogLevel(cfg.LogLevel)
	render.Debugf("config: out=%s format=%s size=%dx%d reference=%v", cfg.Output, cfg.Format, cfg.Width, cfg.Height, cfg.Reference)

	if err := render.WriteFile(cfg.Output, cfg.Format, cfg.Options()); err != nil {
		return err
	}
	if *table {
		return writeTable(stdout)
	}
	return nil
}

// writeTable prints the 0..300 K samples followed by the residual table.
func writeTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "T(K)\tC/R"); err != nil {
		return err
	}
	for _, s := range heat.Curve() {
		if _, err := fmt.Fprintf(w, "%.0f\t%s\n", s.Temperature, render.FormatValue(s.SpecificHeat)); err != nil {
			return err
		}
	}
	rs := heat.Residuals(heat.DefaultParams, heat.ExperimentalPoints())
	if _, err := fmt.Fprintln(w, "\nT(K)\tmeasured\tmodel\tdelta"); err != nil {
		return err
	}
	for _, r := range rs {
		if _, err := fmt.Fprintf(w, "%.0f\t%.2f\t%.3f\t%+.3f\n", r.Temperature, r.Measured, r.Model, r.Delta); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "rms\t%.4f\n", heat.RMS(rs))
	return err
}
