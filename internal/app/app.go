// Package app wires configuration, logging and the run modes of the
// bigcalc command together.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calibration"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/rational"
	"github.com/agbru/bigcalc/internal/server"
	"github.com/agbru/bigcalc/internal/tui"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application is one bigcalc invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In supplies expressions in batch mode when none are given as
	// arguments, and the REPL's input.
	In     io.Reader
	logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput replaces os.Stdin as the expression source.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New parses args (args[0] is the program name) into an Application.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	a.setupLogging()

	if a.Config.Calibrate {
		ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
		defer cancel()
		return calibration.Calibrate(ctx, calibration.Options{
			ProfilePath: a.Config.CalibrationProfile,
			Logger:      a.logger,
		}, out)
	}

	threshold, source := calibration.ResolveFFTThreshold(a.Config)
	a.Config.FFTThreshold = threshold
	a.logger.Debug("fft threshold resolved",
		logging.Int("groups", threshold), logging.String("source", string(source)))

	if a.Config.MetricsAddr != "" {
		stop := a.startMetricsServer(ctx)
		defer stop()
	}

	switch {
	case a.Config.TUI:
		ctx, cancel := SetupSignals(ctx)
		defer cancel()
		return tui.Run(ctx, a.Config, Version, a.logger)
	case a.Config.Interactive:
		return a.runREPL(ctx, out)
	default:
		return a.runBatch(ctx, out, source)
	}
}

// setupLogging installs the configured logger on stderr for the
// arithmetic core and the evaluator. The full-screen calculator owns the terminal,
// so its logs are dropped.
func (a *Application) setupLogging() {
	w := a.ErrWriter
	if a.Config.TUI || w == nil {
		w = io.Discard
	}
	format, err := logging.ParseFormat(a.Config.LogFormat)
	if err != nil {
		format = logging.FormatConsole
	}
	root := logging.New(w, format, a.Config.LogLevel)
	a.logger = root
	bigint.SetLogger(root.Component("bigint"))
	rational.SetLogger(root.Component("rational"))
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer serves /metrics until the returned stop function is
// called. A listen failure is reported but does not stop the run.
func (a *Application) startMetricsServer(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	srv := server.New(a.Config.MetricsAddr, server.WithLogger(a.logger), server.WithVersion(Version))
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Run(ctx); err != nil {
			a.logger.Error("metrics server failed", err, logging.String("addr", a.Config.MetricsAddr))
			fmt.Fprintf(a.ErrWriter, "%sWarning: metrics server: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	ctx, cancel := SetupSignals(ctx)
	defer cancel()

	repl, err := cli.NewREPL(cli.REPLConfig{
		Mode:    a.Config.EvalMode(),
		Timeout: a.Config.Timeout,
		Verbose: a.Config.Verbose,
		Logger:  a.logger,
	})
	if err != nil {
		return apperrors.HandleError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
