package eval

import (
	"fmt"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokShl
	tokShr
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

var tokenNames = map[tokenKind]string{
	tokEOF:     "end of input",
	tokNumber:  "number",
	tokIdent:   "identifier",
	tokPlus:    "'+'",
	tokMinus:   "'-'",
	tokStar:    "'*'",
	tokSlash:   "'/'",
	tokPercent: "'%'",
	tokShl:     "'<<'",
	tokShr:     "'>>'",
	tokCaret:   "'^'",
	tokLParen:  "'('",
	tokRParen:  "')'",
	tokComma:   "','",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits input into tokens. Spaces and tabs separate tokens and are
// otherwise ignored.
func lex(input string) ([]token, error) {
	var toks []token
	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case isDigit(c):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: input[start:i], pos: start})
			continue
		case isLetter(c):
			start := i
			for i < len(input) && (isLetter(input[i]) || isDigit(input[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: input[start:i], pos: start})
			continue
		}

		kind, width := tokEOF, 1
		switch c {
		case '+':
			kind = tokPlus
		case '-':
			kind = tokMinus
		case '*':
			kind = tokStar
		case '/':
			kind = tokSlash
		case '%':
			kind = tokPercent
		case '^':
			kind = tokCaret
		case '(':
			kind = tokLParen
		case ')':
			kind = tokRParen
		case ',':
			kind = tokComma
		case '<', '>':
			if i+1 < len(input) && input[i+1] == c {
				kind, width = tokShl, 2
				if c == '>' {
					kind = tokShr
				}
			}
		}
		if kind == tokEOF {
			return nil, apperrors.SyntaxError{
				Input:   input,
				Offset:  i,
				Message: fmt.Sprintf("unexpected character %q", c),
			}
		}
		toks = append(toks, token{kind: kind, text: input[i : i+width], pos: i})
		i += width
	}
	return append(toks, token{kind: tokEOF, pos: len(input)}), nil
}

func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }
