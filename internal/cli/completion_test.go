package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _bigcalc_completions bigcalc", "--mode|-mode)", `compgen -W "int rat"`, "compgen -f"}},
		{"zsh", []string{"#compdef bigcalc", "'--mode[Number domain]:mode:(int rat)'", "{-v,--verbose}", "_files"}},
		{"fish", []string{"complete -c bigcalc -f", "-l mode", "-xa 'int rat'", "-xa 'console json'", "-s q -l quiet", "-rF"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tt.shell, err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s script lacks %q", tt.shell, s)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupported(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(&bytes.Buffer{}, "powershell"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}
