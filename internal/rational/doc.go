// Package rational implements exact fractions over bigint.Int.
//
// A Rat is always kept in lowest terms with a positive denominator: every
// constructor and every arithmetic method divides numerator and
// denominator by their greatest common divisor before returning. The zero
// value of Rat is 0/1 and ready to use.
//
// A zero denominator (ErrZeroDenominator) and the reciprocal of zero
// (ErrZeroReciprocal) are refused; both match apperrors.ErrInvalidOperand.
package rational
