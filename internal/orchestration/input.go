package orchestration

import (
	"bufio"
	"io"
	"strings"
)

// ReadExpressions returns the non-empty lines of r, trimmed, skipping lines
// that start with '#'.
func ReadExpressions(r io.Reader) ([]string, error) {
	var exprs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, sc.Err()
}
