package tui

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sysmon"
)

// Layout constants.
const (
	headerHeight  = 1
	inputHeight   = 3
	metricsHeight = 5
	footerHeight  = 1
	minHistory    = 3
	tickInterval  = 500 * time.Millisecond
)

// LayoutManager holds the terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) historyHeight() int {
	return max(l.height-headerHeight-inputHeight-metricsHeight-footerHeight, minHistory)
}

// Model is the root bubbletea model of the calculator.
type Model struct {
	header  HeaderModel
	history HistoryModel
	metrics MetricsModel
	input   textinput.Model
	keymap  KeyMap

	LayoutManager

	ctx        context.Context
	cancel     context.CancelFunc
	evaluators map[eval.Mode]orchestration.Evaluator
	mode       eval.Mode
	workers    int
	timeout    time.Duration
	ref        *programRef

	busy       bool
	generation uint64
	progress   orchestration.AggregatedProgress
	lastBatch  time.Duration
	exitCode   int
	quitting   bool
}

// NewModel builds the calculator model for cfg. Evaluators for both modes
// are created up front so toggling the mode cannot fail.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string, logger logging.Logger) (Model, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	evaluators := make(map[eval.Mode]orchestration.Evaluator, 2)
	for _, mode := range []eval.Mode{eval.ModeInt, eval.ModeRat} {
		e, err := eval.New(mode, eval.WithLogger(logger))
		if err != nil {
			return Model{}, err
		}
		evaluators[mode] = e
	}
	mode, err := eval.ParseMode(cfg.Mode)
	if err != nil {
		return Model{}, err
	}

	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "2^1000 / 3; gcd(84, 36)"
	in.Focus()

	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		header:     NewHeaderModel(version, string(mode), bigint.FFTThreshold()),
		metrics:    NewMetricsModel(),
		input:      in,
		keymap:     DefaultKeyMap(),
		ctx:        ctx,
		cancel:     cancel,
		evaluators: evaluators,
		mode:       mode,
		workers:    cfg.Workers,
		timeout:    cfg.Timeout,
		ref:        &programRef{},
		exitCode:   apperrors.ExitSuccess,
	}, nil
}

// Init starts the memory sampler and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(), sampleMemStatsCmd(), sampleSysStatsCmd(), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation {
			m.progress = msg.AggregatedProgress
		}
		return m, nil

	case BatchDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.busy = false
		m.header.SetBusy(false)
		m.progress = orchestration.AggregatedProgress{}
		m.lastBatch = msg.Duration
		m.history.Append(msg.Entries...)
		m.metrics.Record(msg.Entries)
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case ContextCancelledMsg:
		if m.quitting {
			return m, nil
		}
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit),
		key.Matches(msg, m.keymap.Quit) && m.input.Value() == "":
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Evaluate):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		m.history.Clear()
		m.metrics.Reset()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleMode):
		if m.mode == eval.ModeInt {
			m.mode = eval.ModeRat
		} else {
			m.mode = eval.ModeInt
		}
		m.header.SetMode(string(m.mode))
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.history.Scroll(1)
		return m, nil
	case key.Matches(msg, m.keymap.Down):
		m.history.Scroll(-1)
		return m, nil
	case key.Matches(msg, m.keymap.PageUp):
		m.history.Scroll(m.history.Page())
		return m, nil
	case key.Matches(msg, m.keymap.PageDown):
		m.history.Scroll(-m.history.Page())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts evaluating the input line. It is ignored while a batch is
// running or when the line holds no expression.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	exprs := SplitInput(m.input.Value())
	if len(exprs) == 0 {
		return m, nil
	}
	m.input.SetValue("")
	m.busy = true
	m.header.SetBusy(true)
	m.generation++
	m.progress = orchestration.AggregatedProgress{Total: len(exprs)}
	return m, evaluateCmd(m.ctx, m.ref, m.evaluators[m.mode], exprs, m.workers, m.timeout, m.generation)
}

// View renders the screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	input := panelStyle.Width(max(m.width-2, 0)).Padding(0, 1).Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.history.View(),
		input,
		m.metrics.View(),
		m.footerView(),
	)
}

func (m Model) footerView() string {
	if m.busy && m.progress.Total > 1 {
		line := fmt.Sprintf(" %d/%d ", m.progress.Done, m.progress.Total)
		line += format.FormatProgressBarWithETA(m.progress.Progress, m.progress.ETA, 20)
		if m.progress.Failed > 0 {
			line += errorStyle.Render(fmt.Sprintf(" (%d failed)", m.progress.Failed))
		}
		return line
	}
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	line := " " + strings.Join(parts, "  ")
	if m.lastBatch > 0 {
		line += footerDescStyle.Render("  last batch " + format.FormatExecutionDuration(m.lastBatch))
	}
	return line
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.history.SetSize(m.width, m.historyHeight())
	m.metrics.SetWidth(m.width)
	m.input.Width = max(m.width-8, 10)
}

// Run starts the calculator and blocks until the user quits or ctx ends.
// It returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string, logger logging.Logger) int {
	initTUIStyles()

	model, err := NewModel(ctx, cfg, version, logger)
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if fm, ok := final.(Model); ok {
		return fm.exitCode
	}
	return apperrors.ExitSuccess
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var memCollector = metrics.NewMemoryCollector()

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := memCollector.Snapshot()
		return MemStatsMsg{Snapshot: snap, PeakHeap: memCollector.PeakHeap(), NumGoroutine: runtime.NumGoroutine()}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample()}
	}
}

// watchContextCmd reports the end of ctx as a ContextCancelledMsg.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
