// Package cli wires the command line surface: flag parsing, exit
// codes, and rendering of results as a text report or JSON.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/pipe-headloss/internal/config"
	"github.com/couchcryptid/pipe-headloss/internal/domain"
	"github.com/couchcryptid/pipe-headloss/internal/materials"
	"github.com/couchcryptid/pipe-headloss/internal/observability"
	"github.com/couchcryptid/pipe-headloss/internal/pipeline"
	"github.com/couchcryptid/pipe-headloss/internal/report"
	"github.com/spf13/cobra"
)

var (
	diameterMm   float64
	lengthM      float64
	flowRateM3s  float64
	roughnessMm  float64
	materialName string
	density      float64
	viscosity    float64
	kFactors     []float64
	averageMode  string
	jsonOutput   bool
)

// Collaborators injected by Execute. Tests swap them for fakes.
var (
	cfg     *config.Config
	logger  = slog.Default()
	metrics *observability.Metrics
)

var rootCmd = &cobra.Command{
	Use:   "headloss",
	Short: "Darcy-Weisbach head-loss calculator for pipe flow",
	Long: `headloss computes major and minor head losses for a fluid flowing
through a pipe, using three published friction-factor correlations.

Exit codes:
  0 - Calculation completed
  1 - Reynolds number too low for every correlation (no report)
  2 - Usage or configuration error`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runRoot(os.Stdout, os.Stderr)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// Execute injects the collaborators built by main and runs the root
// command. A returned error is a usage error; main exits 2 on it.
func Execute(c *config.Config, log *slog.Logger, m *observability.Metrics) error {
	cfg = c
	logger = log
	metrics = m
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64Var(&diameterMm, "diameter", 0, "Pipe inner diameter in millimeters")
	flags.Float64Var(&lengthM, "length", 0, "Pipe length in meters")
	flags.Float64Var(&flowRateM3s, "flow-rate", 0, "Volumetric flow rate in cubic meters per second")
	flags.Float64Var(&roughnessMm, "roughness", 0, "Absolute pipe roughness in millimeters")
	flags.StringVar(&materialName, "material", "", "Pipe material from the built-in catalog (sets roughness)")
	flags.Float64Var(&density, "density", 1000, "Fluid density in kilograms per cubic meter")
	flags.Float64Var(&viscosity, "viscosity", 0.001, "Fluid dynamic viscosity in pascal seconds")
	flags.Float64SliceVar(&kFactors, "k-factors", nil, "Comma-separated fitting loss coefficients")
	flags.StringVar(&averageMode, "average", "", `Averaging policy: "fixed" (sum/3) or "mean" (overrides AVERAGE_MODE)`)
	flags.BoolVar(&jsonOutput, "json", false, "Emit the structured result as JSON instead of the text report")

	for _, name := range []string{"diameter", "length", "flow-rate"} {
		cobra.CheckErr(rootCmd.MarkFlagRequired(name))
	}
	rootCmd.MarkFlagsMutuallyExclusive("roughness", "material")
}

// runRoot performs one calculation and renders it. It returns the
// process exit code so tests can drive it with buffers.
func runRoot(out, errOut io.Writer) int {
	roughness := roughnessMm
	if materialName != "" {
		m, ok := materials.Lookup(materialName)
		if !ok {
			fmt.Fprintf(errOut, "Error: unknown material %q, run \"headloss materials\" for the catalog\n", materialName)
			return 2
		}
		roughness = m.RoughnessMm
	}

	policy, err := resolveAveragePolicy()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 2
	}

	system := domain.NewPipeSystem(diameterMm, lengthM, flowRateM3s, roughness, density, viscosity, kFactors)
	result, err := pipeline.New(system, policy, logger, metrics).Run()
	if err != nil {
		var rangeErr *domain.ReynoldsRangeError
		if errors.As(err, &rangeErr) {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 2
	}

	if jsonOutput {
		err = writeJSON(out, result)
	} else {
		err = report.Write(out, result)
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 2
	}
	return 0
}

// resolveAveragePolicy applies the flag over the environment setting.
// With neither present the fixed-divisor policy applies.
func resolveAveragePolicy() (domain.AveragePolicy, error) {
	mode := averageMode
	if mode == "" && cfg != nil {
		mode = cfg.AverageMode
	}
	if mode == "" {
		return domain.AverageFixedDivisor, nil
	}
	return domain.ParseAveragePolicy(mode)
}

func writeJSON(w io.Writer, res domain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
