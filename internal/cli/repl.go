package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/ui"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	Mode    eval.Mode
	Timeout time.Duration
	// Verbose shows full values and timings.
	Verbose bool
	Logger  logging.Logger
}

// REPL is a line-oriented interactive calculator.
type REPL struct {
	config    REPLConfig
	evaluator *eval.Evaluator
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a REPL reading stdin and writing stdout. It fails if
// config.Mode is unknown.
func NewREPL(config REPLConfig) (*REPL, error) {
	if config.Mode == "" {
		config.Mode = eval.ModeInt
	}
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	evaluator, err := eval.New(config.Mode, eval.WithLogger(config.Logger))
	if err != nil {
		return nil, err
	}
	return &REPL{
		config:    config,
		evaluator: evaluator,
		in:        os.Stdin,
		out:       os.Stdout,
	}, nil
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until exit, EOF or ctx cancellation.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintf(r.out, "\n%sInterrupted.%s\n", ui.ColorYellow(), ui.ColorReset())
			return
		}
		fmt.Fprintf(r.out, "%s%s> %s", ui.ColorGreen(), r.config.Mode, ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		line := strings.TrimSpace(input)
		if line != "" && !r.processCommand(ctx, line) {
			return
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sbigcalc - Interactive Mode%s                           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<expr>%s            - Evaluate an expression, e.g. 2^100 %% 7\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %seval <expr>%s       - Same as above\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smode [int|rat]%s    - Show or change the number domain\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sthreshold [n]%s     - Show or set the FFT threshold in digit groups\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s            - Display the current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s              - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand runs one input line. It returns false when the session
// should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "eval", "e":
		if rest == "" {
			fmt.Fprintf(r.out, "%sUsage: eval <expr>%s\n", ui.ColorRed(), ui.ColorReset())
			return true
		}
		r.evaluate(ctx, rest)
	case "mode", "m":
		r.cmdMode(rest)
	case "threshold", "t":
		r.cmdThreshold(rest)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(ctx, input)
	}
	return true
}

func (r *REPL) evaluate(ctx context.Context, expr string) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	res, err := r.evaluator.Evaluate(ctx, expr)
	if err != nil {
		r.printError(err)
		return
	}
	value, abbreviated := FormatValue(res.Value.String(), r.config.Verbose)
	fmt.Fprintf(r.out, "  = %s%s%s\n", ui.ColorGreen(), value, ui.ColorReset())
	if abbreviated || r.config.Verbose {
		fmt.Fprintf(r.out, "  %s%d digits in %s%s\n",
			ui.ColorGrey(), res.Digits, format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
}

// printError shows a syntax error with a caret under the offending column.
func (r *REPL) printError(err error) {
	var syn apperrors.SyntaxError
	if errors.As(err, &syn) && syn.Offset >= 0 && syn.Offset <= len(syn.Input) {
		fmt.Fprintf(r.out, "  %s\n  %s%s^%s\n", syn.Input, strings.Repeat(" ", syn.Offset), ui.ColorRed(), ui.ColorReset())
	}
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

func (r *REPL) cmdMode(arg string) {
	if arg == "" {
		fmt.Fprintf(r.out, "Mode: %s%s%s\n", ui.ColorCyan(), r.config.Mode, ui.ColorReset())
		return
	}
	mode, err := eval.ParseMode(arg)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	evaluator, err := eval.New(mode, eval.WithLogger(r.config.Logger))
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.config.Mode = mode
	r.evaluator = evaluator
	fmt.Fprintf(r.out, "Mode changed to: %s%s%s\n", ui.ColorGreen(), mode, ui.ColorReset())
}

func (r *REPL) cmdThreshold(arg string) {
	if arg == "" {
		fmt.Fprintf(r.out, "FFT threshold: %s%d%s digit groups\n", ui.ColorCyan(), bigint.FFTThreshold(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		fmt.Fprintf(r.out, "%sInvalid threshold: %s%s\n", ui.ColorRed(), arg, ui.ColorReset())
		return
	}
	bigint.SetFFTThreshold(n)
	fmt.Fprintf(r.out, "FFT threshold set to: %s%d%s digit groups\n", ui.ColorGreen(), bigint.FFTThreshold(), ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	verbose := "no"
	if r.config.Verbose {
		verbose = "yes"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Mode:           %s%s%s\n", ui.ColorCyan(), r.config.Mode, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  FFT threshold:  %s%d%s digit groups\n", ui.ColorCyan(), bigint.FFTThreshold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Verbose:        %s%s%s\n", ui.ColorCyan(), verbose, ui.ColorReset())
	fmt.Fprintln(r.out)
}
