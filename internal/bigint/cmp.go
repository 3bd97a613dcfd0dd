package bigint

// cmpMag compares two normalized magnitudes: group count first, then
// groups from the most significant down.
func cmpMag(a, b []digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag(), y.mag())
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return cmpMag(x.mag(), y.mag())
}

// Equal reports whether x and y have the same sign and digit groups.
func (x *Int) Equal(y *Int) bool {
	return x.neg == y.neg && cmpMag(x.mag(), y.mag()) == 0
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool { return x.Cmp(y) < 0 }

// LessEq reports whether x <= y.
func (x *Int) LessEq(y *Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool { return x.Cmp(y) > 0 }

// GreaterEq reports whether x >= y.
func (x *Int) GreaterEq(y *Int) bool { return x.Cmp(y) >= 0 }
