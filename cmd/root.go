package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"pipecheck/internal/config"
	"pipecheck/internal/logger"
	"pipecheck/internal/platform"
	"pipecheck/internal/report"
	"pipecheck/internal/selfcheck"
	"pipecheck/internal/version"
)

// Process exit codes. Fatal errors other than an unrecognized output format
// (config parse failure, self-check failure, bad flags) share ExitFailure.
const (
	ExitSuccess   = 0
	ExitBadFormat = 1
	ExitFailure   = 2
)

// options holds the parsed command-line flags for a single run.
type options struct {
	configPath string
	output     string
	verbosity  int
	platform   bool
}

// newRootCmd builds the root command with a fresh flag set so tests can run
// it repeatedly without flag state leaking between runs.
func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pipecheck",
		Short: "Minimal CLI for validating a build/test pipeline",
		Long: `pipecheck renders a small status report from a built-in or file-supplied
configuration and runs a few inline self-checks, exercising argument parsing,
file I/O, serialization, and environment lookup in one invocation.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON (or YAML) configuration file")
	f.StringVarP(&opts.output, "output", "o", report.FormatText, "output format: text, json")
	f.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity level (repeatable)")
	f.BoolVar(&opts.platform, "platform", false, "include platform information in the report")

	return cmd
}

// run is the whole program: resolve the configuration, render the report,
// then run the self-checks. The report goes to stdout, everything else to
// stderr.
func run(opts options, stdout, stderr io.Writer) error {
	logger.Init(opts.verbosity)
	logger.SetOutput(stderr)

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}

	logger.Progress("Verbose level: %d\n", opts.verbosity)
	logger.Debug("Config: %+v\n", cfg)

	var plat *platform.Info
	if opts.platform {
		p := platform.Current()
		plat = &p
	}

	if err := report.Render(stdout, opts.output, cfg, plat); err != nil {
		return err
	}

	return selfcheck.Run()
}

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("Error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

// exitCode maps a propagated error to the documented process exit code.
func exitCode(err error) int {
	if errors.Is(err, report.ErrUnsupportedFormat) {
		return ExitBadFormat
	}
	return ExitFailure
}
