package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gomonte/adapters/excel"
	"gomonte/adapters/plot"
	"gomonte/app"
	"gomonte/domain/montecarlo"
	"gomonte/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gomonte-cli",
		Short: "Monte Carlo integral estimation from the command line",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newFunctionsCmd(),
		newCriteriaCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		method    string
		function  string
		criterion string
		low       float64
		high      float64
		samples   int
		seed      uint64
		plotOut   string
		excelOut  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one estimator and print the result as JSON",
		Long: `Run one Monte Carlo estimator against a built-in function.

Example: gomonte-cli run --method hitormiss --function gauss --low -10 --high 10 --samples 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewSimulationService(simulationDefaults())

			run, err := svc.Run(context.Background(), app.SimulationRequest{
				Method:    method,
				Function:  function,
				Criterion: criterion,
				Low:       low,
				High:      high,
				Samples:   samples,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			if plotOut != "" {
				renderer := plot.NewRenderer(".")
				if _, err := renderer.Render(run.Simulation, plot.Options{Filename: plotOut}); err != nil {
					return fmt.Errorf("plot export failed: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "plot written to %s\n", plotOut)
			}
			if excelOut != "" {
				if err := excel.NewWriter().WriteFile(run.Simulation, excelOut); err != nil {
					return fmt.Errorf("excel export failed: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "workbook written to %s\n", excelOut)
			}

			return printJSON(cmd, run)
		},
	}

	cmd.Flags().StringVar(&method, "method", "average", "estimator: hitormiss or average")
	cmd.Flags().StringVar(&function, "function", "", "built-in function to integrate")
	cmd.Flags().StringVar(&criterion, "criteria", "", "hit-or-miss comparison criterion")
	cmd.Flags().Float64Var(&low, "low", -3, "lower integration bound")
	cmd.Flags().Float64Var(&high, "high", 3, "upper integration bound")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of random samples")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 for non-deterministic)")
	cmd.Flags().StringVar(&plotOut, "plot", "", "write a PNG plot to this file")
	cmd.Flags().StringVar(&excelOut, "excel", "", "write an xlsx workbook to this file")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		function string
		low      float64
		high     float64
		samples  int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run hit-or-miss across every criterion and print the estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewSweepService(app.NewSimulationService(simulationDefaults()))

			result, err := svc.Run(context.Background(), app.SweepRequest{
				Function: function,
				Low:      low,
				High:     high,
				Samples:  samples,
				Seed:     seed,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&function, "function", "", "built-in function to integrate")
	cmd.Flags().Float64Var(&low, "low", -3, "lower integration bound")
	cmd.Flags().Float64Var(&high, "high", 3, "upper integration bound")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of random samples per criterion")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 for non-deterministic)")

	return cmd
}

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the built-in target functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, montecarlo.FunctionNames())
		},
	}
}

func newCriteriaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the hit-or-miss criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, montecarlo.CriterionNames())
		},
	}
}

func simulationDefaults() config.SimulationConfig {
	cfg, err := config.Load()
	if err != nil {
		// Fall back to built-in defaults when the environment is unset.
		return config.SimulationConfig{
			DefaultSamples:   1000,
			DefaultCriterion: "minor",
			DefaultFunction:  "gauss",
		}
	}
	return cfg.Simulation
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
