// Package eval parses and evaluates arithmetic expressions over
// arbitrary-precision integers or exact fractions.
//
// The grammar, from lowest to highest precedence:
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/' | '%' | '<<' | '>>') unary)*
//	unary := '-' unary | power
//	power := atom ('^' unary)?
//	atom  := integer | '(' expr ')' | ident '(' expr (',' expr)* ')'
//
// '^' is right associative and binds tighter than unary minus, so -2^2 is
// -4. The functions gcd, abs, pow and inv are available; inv requires
// ModeRat.
package eval
