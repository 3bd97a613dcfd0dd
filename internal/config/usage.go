package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/bigcalc/internal/ui"
)

func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// The theme is not initialized yet when flags fail to parse.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()
		fmt.Fprintf(out, "\n%sbigcalc%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Exact integer and fraction arithmetic of arbitrary size.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] [expression ...]\n", t.Warning, t.Reset, fs.Name())
		fmt.Fprintf(out, "  Without expressions, one expression is read per line of standard input.\n\n")
		fmt.Fprintf(out, "%sExamples:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %s '2^1000 %% 97' 'gcd(1071, 462)'\n", fs.Name())
		fmt.Fprintf(out, "  %s -mode rat '1/3 + 1/6'\n\n", fs.Name())
		fmt.Fprintf(out, "%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := "-" + f.Name
			if name != "" {
				flagSig += " " + name
			}
			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
