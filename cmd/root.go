package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmsim/pagesim/sim"
	"github.com/vmsim/pagesim/sim/reference"
	"github.com/vmsim/pagesim/sim/trace"
)

// ErrUsage is returned when the command is not given exactly two positional arguments.
var ErrUsage = errors.New("expected exactly two arguments: pagereffile memorysize")

// reportedError marks an error whose user-facing message was already written.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error { return &reportedError{err: err} }

// options holds CLI flags for a single root command instance.
type options struct {
	logLevel   string // Log verbosity level
	traceLevel string // Decision trace level (none, accesses)
	traceOut   string // Trace export path; empty means stderr
}

// newRootCmd builds the pagesim command reading files from fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "pagesim pagereffile memorysize",
		Short:         "Count page faults under FIFO and LRU replacement",
		Args:          cobra.ArbitraryArgs, // arity is checked in runSimulation to control the message
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are split off by hand so "-1" or "-refs.txt" stay positional.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagArgs, positional := splitArgs(cmd, args)
			if err := cmd.Flags().Parse(flagArgs); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			return runSimulation(cmd, fs, opts, positional)
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&opts.traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, accesses)")
	cmd.Flags().StringVar(&opts.traceOut, "trace-out", "", "Write the decision trace as YAML to this path (implies --trace accesses)")

	return cmd
}

// splitArgs separates the leading long flags from the positional arguments.
// Only "--name" and "--name=value" before the first positional argument are
// flags; "--" ends the flags. Anything after the first positional, including
// tokens with a single leading dash, is positional.
func splitArgs(cmd *cobra.Command, args []string) (flagArgs, positional []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "--") {
			break
		}
		flagArgs = append(flagArgs, arg)
		i++

		name := strings.TrimPrefix(arg, "--")
		if strings.Contains(name, "=") {
			continue
		}
		if f := cmd.Flags().Lookup(name); f != nil && f.Value.Type() != "bool" && i < len(args) {
			flagArgs = append(flagArgs, args[i])
			i++
		}
	}
	return flagArgs, args[i:]
}

// runSimulation validates the arguments, loads the references once and
// replays them through every policy in report order.
func runSimulation(cmd *cobra.Command, fs afero.Fs, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	if err := applyEnv(cmd, opts); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logrus.SetLevel(level)

	if opts.traceOut != "" && (opts.traceLevel == "" || opts.traceLevel == string(trace.TraceLevelNone)) {
		opts.traceLevel = string(trace.TraceLevelAccesses)
	}
	if !trace.IsValidTraceLevel(opts.traceLevel) {
		return fmt.Errorf("unknown trace level %q", opts.traceLevel)
	}

	if len(args) != 2 {
		_, _ = fmt.Fprintf(out, "Usage: %s\n", cmd.Use)
		return reported(ErrUsage)
	}

	capacity, err := parseCapacity(args[1])
	if err != nil {
		_, _ = fmt.Fprintf(out, "Error: %s\n", sim.ErrCapacityOutOfRange)
		return reported(err)
	}

	refs, err := reference.Load(fs, args[0])
	if err != nil {
		if errors.Is(err, reference.ErrOpen) {
			_, _ = fmt.Fprintln(out, "Failed to open the file.")
		} else {
			_, _ = fmt.Fprintln(out, "Failed to read the file.")
		}
		return reported(err)
	}

	logrus.Infof("Starting simulation with %d references, %d frames", len(refs), capacity)

	tracing := trace.TraceLevel(opts.traceLevel) == trace.TraceLevelAccesses
	var traces []*trace.SimulationTrace
	for _, name := range sim.ValidReplacementPolicies {
		var st *trace.SimulationTrace
		if tracing {
			st = trace.NewSimulationTrace(name, trace.TraceConfig{Level: trace.TraceLevelAccesses, Capacity: capacity})
			traces = append(traces, st)
		}
		res := sim.Simulate(sim.NewReplacementPolicy(name, capacity), refs, st)
		res.Print(out)
		logrus.Infof("%s: %d faults, %d hits over %d references", name, res.Faults, res.Hits, res.References)
	}

	if tracing {
		if err := writeTrace(fs, cmd.ErrOrStderr(), opts.traceOut, args[0], capacity, traces); err != nil {
			return err
		}
	}

	logrus.Info("Simulation complete.")
	return nil
}

// parseCapacity parses a frame count and checks it against the legal range.
// A value that is not an integer is reported as out of range.
func parseCapacity(s string) (int, error) {
	capacity, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("memory size %q: %w", s, sim.ErrCapacityOutOfRange)
	}
	if err := sim.ValidateCapacity(capacity); err != nil {
		return 0, err
	}
	return capacity, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		var rep *reportedError
		if errors.As(err, &rep) {
			logrus.Debugf("pagesim: %v", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
