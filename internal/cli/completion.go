package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes one command-line flag for completion scripts.
type FlagCompletion struct {
	Long      string   // name without "--"
	Short     string   // name without "-"
	Help      string
	Values    []string // suggested values, nil for booleans
	ValueName string   // zsh value label
	IsFile    bool
}

// flagRegistry drives every generated script.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "mode", Help: "Number domain", Values: []string{"int", "rat"}, ValueName: "mode"},
	{Long: "fft-threshold", Help: "FFT threshold in digit groups", Values: []string{"0", "64", "128", "140", "256"}, ValueName: "groups"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "workers", Help: "Concurrent evaluations", ValueName: "count"},
	{Long: "verbose", Short: "v", Help: "Full values and timings"},
	{Long: "quiet", Short: "q", Help: "Bare values only"},
	{Long: "json", Help: "JSON output"},
	{Long: "interactive", Short: "i", Help: "Start the REPL"},
	{Long: "tui", Help: "Start the full-screen calculator"},
	{Long: "calibrate", Help: "Measure the FFT threshold"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus listen address", ValueName: "addr"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "log-format", Help: "Log encoding", Values: []string{"console", "json"}, ValueName: "format"},
	{Long: "no-color", Help: "Disable colors"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh"
// or "fish").
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion() string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		patterns := []string{"--" + f.Long, "-" + f.Long}
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(patterns, "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for bigcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_bigcalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigcalc_completions bigcalc
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion() string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef bigcalc

# Zsh completion script for bigcalc
# Place in a directory of your $fpath

_bigcalc() {
    _arguments -s \
%s \
        '*:expression:'
}

_bigcalc "$@"
`, strings.Join(args, " \\\n"))
}

func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func fishCompletion() string {
	lines := []string{
		"# Fish completion script for bigcalc",
		"# Add this to ~/.config/fish/completions/bigcalc.fish",
		"",
		"complete -c bigcalc -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c bigcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
