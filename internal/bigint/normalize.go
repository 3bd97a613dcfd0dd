package bigint

// carry folds each group's overflow into the next more significant group,
// least significant first, so that every group ends up in [0, Radix).
// Groups are appended when the most significant one overflows. The
// represented magnitude must be non-negative.
func (z *Int) carry() {
	d := z.digits
	for i := 0; i < len(d); i++ {
		q, r := d[i]/Radix, d[i]%Radix
		if r < 0 {
			r += Radix
			q--
		}
		d[i] = r
		if q == 0 {
			continue
		}
		if i+1 == len(d) {
			if q < 0 {
				panic("bigint: carry on a negative magnitude")
			}
			d = append(d, 0)
		}
		d[i+1] += q
	}
	z.digits = d
	z.trim()
}

// borrow repairs groups left negative by a position-wise subtraction,
// taking as many units of Radix from the next group as needed.
// The represented magnitude must be non-negative.
func (z *Int) borrow() {
	d := z.digits
	for i := 0; i+1 < len(d); i++ {
		if d[i] < 0 {
			k := (-d[i] + Radix - 1) / Radix
			d[i] += k * Radix
			d[i+1] -= k
		}
	}
	if d[len(d)-1] < 0 {
		panic("bigint: borrow on a negative magnitude")
	}
	z.trim()
}

// trim drops most significant zero groups, keeping at least one group,
// and clears the sign of zero.
func (z *Int) trim() {
	if len(z.digits) == 0 {
		z.digits = append(z.digits, 0)
	}
	i := len(z.digits) - 1
	for i > 0 && z.digits[i] == 0 {
		i--
	}
	z.digits = z.digits[:i+1]
	if i == 0 && z.digits[0] == 0 {
		z.neg = false
	}
}
