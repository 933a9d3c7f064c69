package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/bouncesim/internal/bounce"
	"github.com/san-kum/bouncesim/internal/config"
	"github.com/san-kum/bouncesim/internal/driver"
	"github.com/san-kum/bouncesim/internal/logging"
)

// app carries flag values and resolved state shared by all commands.
type app struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	configFile string
	preset     string
	dataDir    string
	logLevel   string
	height     float64
	gravity    float64
	precision  int

	cfg *config.Config
	log zerolog.Logger
}

// main is the entry point for the bouncesim CLI. With no subcommand it runs
// the interactive demonstration and always exits 0; subcommands exit 1 on
// error.
func main() {
	a := &app{in: os.Stdin, out: os.Stdout, err: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bouncesim",
		Short: "bouncing ball kinematics",
		Long: "Computes the apex height, travelled distance and elapsed time of a ball\n" +
			"dropped from a fixed height that rebounds to half its height on every bounce.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := driver.New(a.in, a.out,
				driver.WithParams(a.cfg.Params()),
				driver.WithDemoCount(a.cfg.DemoCount),
				driver.WithPrecision(a.cfg.Precision),
				driver.WithLogger(a.log),
			)
			if err := d.Run(); err != nil {
				a.log.Error().Err(err).Msg("interactive run failed")
			}
			return nil
		},
	}
	rootCmd.SetFlagErrorFunc(a.flagError)
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.err)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.preset, "preset", "", "use preset parameters (see presets)")
	pf.StringVar(&a.dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.Float64Var(&a.height, "height", config.DefaultHeight, "initial drop height (m)")
	pf.Float64Var(&a.gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "decimal places in reports")

	rootCmd.AddCommand(
		newComputeCmd(a),
		newTableCmd(a),
		newPlotCmd(a),
		newSimulateCmd(a),
		newLiveCmd(a),
		newListCmd(a),
		newExportJSONCmd(a),
		newExportCSVCmd(a),
		newPresetsCmd(a),
	)
	return rootCmd
}

// setup resolves configuration: defaults, then preset, then config file,
// then explicitly set flags.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if a.preset != "" {
		p := config.GetPreset(a.preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	if a.configFile != "" {
		if err := config.LoadInto(a.configFile, cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Height = a.height
	}
	if flags.Changed("gravity") {
		cfg.Gravity = a.gravity
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.LogLevel, a.err)
	a.log.Debug().
		Str("command", cmd.Name()).
		Float64("height", cfg.Height).
		Float64("gravity", cfg.Gravity).
		Str("data", cfg.DataDir).
		Msg("configuration resolved")
	return nil
}

// flagError turns "compute -5", which pflag reads as a group of shorthand
// flags, into the same error as "compute 0".
func (a *app) flagError(cmd *cobra.Command, err error) error {
	var ne *pflag.NotExistError
	if !errors.As(err, &ne) || ne.GetSpecifiedShortnames() == "" {
		return err
	}
	if !strings.HasSuffix(cmd.Use, "[n]") {
		return err
	}
	arg := "-" + ne.GetSpecifiedShortnames()
	if _, perr := driver.ParseCount(arg); errors.Is(perr, driver.ErrNonPositiveInput) {
		return fmt.Errorf("invalid bounce count %q: %w", arg, perr)
	}
	return err
}

// countArg parses the optional bounce count argument, falling back to the
// configured demo count.
func (a *app) countArg(args []string) (int, error) {
	if len(args) == 0 {
		return a.cfg.DemoCount, nil
	}
	n, err := driver.ParseCount(args[0])
	if err == nil {
		err = bounce.CheckCount(n)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid bounce count %q: %w", args[0], err)
	}
	return n, nil
}
