// Package commands implements the roadviz subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ufabox/InfoViz-25W/internal/config"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
)

// Shared flag names.
const (
	configFlag      = "config"
	configFlagUsage = "config file path (default: .roadviz.yaml in CWD or $HOME)"
	dataFlag        = "data"
	dataFlagUsage   = "merged collision-casualty CSV extract"
	flagDateLayout  = "2006-01-02"
)

// ErrNoDataPath is returned when neither --data nor data.path names the
// extract.
var ErrNoDataPath = errors.New("data path is required (use --data or data.path)")

// commonFlags are the flags every subcommand shares: config location,
// data location and the filter selections.
type commonFlags struct {
	configPath string
	dataPath   string

	year  int
	prior int

	severity   []string
	speed      []string
	age        []string
	class      []string
	gender     []string
	vehicle    []string
	engine     []string
	vehicleAge []string

	from string
	to   string
}

// register wires the shared flags onto cmd.
func (cf *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&cf.configPath, configFlag, "c", "", configFlagUsage)
	cmd.Flags().StringVarP(&cf.dataPath, dataFlag, "d", "", dataFlagUsage)

	cmd.Flags().IntVar(&cf.year, "year", 0, "current comparison year (default: most recent)")
	cmd.Flags().IntVar(&cf.prior, "prior", 0, "prior comparison year (default: one before current)")

	cmd.Flags().StringSliceVar(&cf.severity, "severity", nil, "severity codes to keep (1=fatal 2=serious 3=slight)")
	cmd.Flags().StringSliceVar(&cf.speed, "speed", nil, "speed limits to keep")
	cmd.Flags().StringSliceVar(&cf.age, "age", nil, "casualty age bands to keep")
	cmd.Flags().StringSliceVar(&cf.class, "class", nil, "casualty classes to keep")
	cmd.Flags().StringSliceVar(&cf.gender, "gender", nil, "casualty sexes to keep")
	cmd.Flags().StringSliceVar(&cf.vehicle, "vehicle", nil, "vehicle groups to keep")
	cmd.Flags().StringSliceVar(&cf.engine, "engine", nil, "engine capacity bands to keep")
	cmd.Flags().StringSliceVar(&cf.vehicleAge, "vehicle-age", nil, "vehicle age bands to keep")

	cmd.Flags().StringVar(&cf.from, "from", "", "keep collisions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cf.to, "to", "", "keep collisions on or before this date (YYYY-MM-DD)")
}

// setup loads config, the extract and a state seeded from the filter
// flags. It is the shared front half of every subcommand.
func (cf *commonFlags) setup(logger *slog.Logger) (*config.Config, *dataset.Store, *state.State, error) {
	cfg, err := config.LoadConfig(cf.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	path := cf.dataPath
	if path == "" {
		path = cfg.Data.Path
	}

	if path == "" {
		return nil, nil, nil, ErrNoDataPath
	}

	store, err := dataset.Load(path, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	st := state.New(store.Years())

	if err := cf.apply(st); err != nil {
		return nil, nil, nil, err
	}

	return cfg, store, st, nil
}

// apply replays the filter flags as state operations. Unset flags keep
// the state defaults.
func (cf *commonFlags) apply(st *state.State) error {
	if cf.year != 0 || cf.prior != 0 {
		current, prior := st.YearPair()

		if cf.year != 0 {
			current = cf.year
		}

		if cf.prior != 0 {
			prior = cf.prior
		}

		if err := st.SetYearPair(current, prior); err != nil {
			return err
		}
	}

	dims := []struct {
		dim    state.Dimension
		values []string
	}{
		{state.DimSeverity, cf.severity},
		{state.DimSpeed, cf.speed},
		{state.DimAgeBand, cf.age},
		{state.DimClass, cf.class},
		{state.DimGender, cf.gender},
		{state.DimVehicleGroup, cf.vehicle},
		{state.DimEngineBand, cf.engine},
		{state.DimVehicleAgeBand, cf.vehicleAge},
	}

	for _, d := range dims {
		if len(d.values) > 0 {
			st.SetDimension(d.dim, d.values)
		}
	}

	if cf.from != "" || cf.to != "" {
		var from, to time.Time

		if cf.from != "" {
			parsed, err := time.Parse(flagDateLayout, cf.from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}

			from = parsed
		}

		if cf.to != "" {
			parsed, err := time.Parse(flagDateLayout, cf.to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			to = parsed
		}

		st.SetDateRange(from, to)
	}

	return nil
}

var logLevel = new(slog.LevelVar)

// SetVerbosity maps the root --verbose/--quiet flags onto the command
// logger level. Quiet wins when both are set.
func SetVerbosity(verbose, quiet bool) {
	switch {
	case quiet:
		logLevel.Set(slog.LevelError)
	case verbose:
		logLevel.Set(slog.LevelDebug)
	default:
		logLevel.Set(slog.LevelInfo)
	}
}

// newLogger builds the command logger writing to stderr.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
