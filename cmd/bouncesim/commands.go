package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/bouncesim/internal/bounce"
	"github.com/san-kum/bouncesim/internal/config"
	"github.com/san-kum/bouncesim/internal/driver"
	"github.com/san-kum/bouncesim/internal/export"
	"github.com/san-kum/bouncesim/internal/integrators"
	"github.com/san-kum/bouncesim/internal/sim"
	"github.com/san-kum/bouncesim/internal/storage"
	"github.com/san-kum/bouncesim/internal/viz"
)

func newComputeCmd(a *app) *cobra.Command {
	var (
		save   bool
		asJSON bool
		styled bool
	)
	cmd := &cobra.Command{
		Use:   "compute [n]",
		Short: "compute height, distance and time at the n-th apex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.countArg(args)
			if err != nil {
				return err
			}

			p := a.cfg.Params()
			result := bounce.Compute(n, p)
			closed := bounce.ComputeClosedForm(n, p)
			metrics := map[string]float64{
				"closed_form_distance_error": math.Abs(closed.TotalDistance - result.TotalDistance),
				"closed_form_time_error":     math.Abs(closed.TotalTime - result.TotalTime),
			}
			a.log.Debug().Int("n", n).Interface("metrics", metrics).Msg("computed")

			switch {
			case asJSON:
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			case styled:
				fmt.Fprintln(a.out, viz.RenderReport(result, p, a.cfg.Precision))
			default:
				fmt.Fprintf(a.out, "when n = %d:\n", n)
				if err := driver.WriteReport(a.out, result, a.cfg.Precision); err != nil {
					return err
				}
			}

			if !save {
				return nil
			}
			st := storage.New(a.cfg.DataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.Save(p, result, metrics)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			a.log.Info().Str("run", runID).Msg("run saved")
			fmt.Fprintf(a.out, "run id: %s\n", runID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "persist the run under the data directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&styled, "styled", false, "print a styled report panel")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [n]",
		Short: "list every drop, rise and fall up to the n-th apex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.countArg(args)
			if err != nil {
				return err
			}

			prec := a.cfg.Precision
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BOUNCE\tPHASE\tHEIGHT\tDURATION\tDISTANCE\tTIME")
			for _, seg := range bounce.Segments(n, a.cfg.Params()) {
				fmt.Fprintf(w, "%d\t%s\t%.*f\t%.*f\t%.*f\t%.*f\n",
					seg.Bounce, seg.Phase,
					prec, seg.Height,
					prec, seg.Duration,
					prec, seg.Distance,
					prec, seg.Time,
				)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd(a *app) *cobra.Command {
	var (
		dt         float64
		width      int
		plotHeight int
		svgPath    string
	)
	cmd := &cobra.Command{
		Use:   "plot [n]",
		Short: "plot height over time up to the n-th apex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.countArg(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dt") {
				dt = a.cfg.Dt
			}

			samples, err := bounce.Trajectory(n, a.cfg.Params(), dt)
			if err != nil {
				return err
			}
			a.log.Debug().Int("samples", len(samples)).Msg("trajectory sampled")

			if svgPath != "" {
				if err := export.SaveTrajectorySVG(svgPath, samples, width*10, plotHeight*20); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "wrote %s\n", svgPath)
				return nil
			}

			fmt.Fprintln(a.out, viz.PlotTrajectory(samples, width, plotHeight))
			return nil
		},
	}
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "sample interval (s)")
	cmd.Flags().IntVar(&width, "width", viz.DefaultPlotWidth, "plot width (columns)")
	cmd.Flags().IntVar(&plotHeight, "rows", viz.DefaultPlotHeight, "plot height (rows)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG file instead of printing")
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	var (
		dt       float64
		integs   []string
		timeout  time.Duration
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "simulate [n]",
		Short: "integrate the drop numerically and compare with the formulas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.countArg(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dt") {
				dt = a.cfg.Dt
			}

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			cfg := sim.Config{Height: a.cfg.Height, Dt: dt, Bounces: n, MaxSteps: maxSteps}
			start := time.Now()
			results, err := sim.Compare(ctx, a.cfg.Gravity, integs, cfg)
			if err != nil {
				return err
			}
			a.log.Debug().Dur("elapsed", time.Since(start)).Int("runs", len(results)).Msg("simulation finished")

			want := bounce.Compute(n, a.cfg.Params())
			fmt.Fprintf(a.out, "simulating %d bounces (h0=%g, g=%g, dt=%g)\n\n", n, a.cfg.Height, a.cfg.Gravity, dt)

			prec := a.cfg.Precision
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tAPEX\tDISTANCE\tTIME\tSTEPS\tTIME_ERR")
			fmt.Fprintf(w, "analytic\t%.*f\t%.*f\t%.*f\t-\t-\n",
				prec, want.BounceHeight, prec, want.TotalDistance, prec, want.TotalTime)
			for _, r := range results {
				apex, _ := r.LastApex()
				fmt.Fprintf(w, "%s\t%.*f\t%.*f\t%.*f\t%d\t%.2e\n",
					r.Integrator,
					prec, apex.Height,
					prec, r.Distance,
					prec, r.Time,
					r.Steps,
					math.Abs(r.Time-want.TotalTime),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "integration timestep (s)")
	cmd.Flags().StringSliceVar(&integs, "integrators", []string{"rk4"},
		"integrators to compare ("+strings.Join(integrators.Names(), ", ")+")")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort after this long (0 = no limit)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", sim.DefaultMaxSteps, "step budget per run")
	return cmd
}

func newLiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "live [n]",
		Short: "explore bounce counts interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.countArg(args)
			if err != nil {
				return err
			}
			m := viz.NewExplorer(n, a.cfg.Params(), a.cfg.Precision)
			p := tea.NewProgram(m, tea.WithInput(a.in), tea.WithOutput(a.out))
			_, err = p.Run()
			return err
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(a.cfg.DataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(a.out, "no runs found")
				return nil
			}

			prec := a.cfg.Precision
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tN\tH0\tG\tHEIGHT\tDISTANCE\tDURATION")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\t%.*f\t%.*f\t%.*f\n",
					run.ID,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Result.Count,
					run.Height,
					run.Gravity,
					prec, run.Result.BounceHeight,
					prec, run.Result.TotalDistance,
					prec, run.Result.TotalTime,
				)
			}
			return w.Flush()
		},
	}
}

func newExportJSONCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(a.cfg.DataDir).ExportJSON(a.out, args[0])
		},
	}
}

func newExportCSVCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's segments as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segs, err := storage.New(a.cfg.DataDir).LoadSegments(args[0])
			if err != nil {
				return err
			}
			w := csv.NewWriter(a.out)
			if err := storage.WriteSegmentsCSV(w, segs); err != nil {
				return err
			}
			w.Flush()
			return w.Error()
		},
	}
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available parameter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.GetPreset(name).Description)
			}
			return w.Flush()
		},
	}
}
