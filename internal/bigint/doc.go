// Package bigint implements arbitrary-precision signed integers in
// sign-magnitude form over base-100 digit groups.
//
// Multiplication switches from a schoolbook convolution to a complex FFT
// convolution once the larger operand reaches FFTThreshold groups. Division
// and remainder use binary doubling: the divisor and a quotient unit are
// doubled up to the dividend and then halved back down while the quotient
// is accumulated.
//
// Receiver methods (Add, Sub, Mul, Quo, ...) update the receiver and return
// it so calls can be chained. The package-level functions of the same name
// leave their operands untouched and return a new Int. An Int is a plain
// value owned by its caller; distinct values may be used from different
// goroutines, a single value may not.
//
// Division by zero is reported as ErrDivisionByZero, which matches
// apperrors.ErrInvalidOperand. The operation stops and its receiver is left
// unchanged.
package bigint
