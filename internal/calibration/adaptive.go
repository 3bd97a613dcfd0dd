package calibration

import "runtime"

// DefaultSizes are the operand sizes, in base-100 digit groups, timed by a
// full calibration. They bracket the default crossover.
var DefaultSizes = []int{32, 64, 96, 128, 160, 192, 256, 384, 512}

// GenerateQuickSizes returns a shorter size list for a fast run. Single-CPU
// machines skip the largest size, where a schoolbook trial alone takes
// noticeably long.
func GenerateQuickSizes() []int {
	if runtime.NumCPU() == 1 {
		return []int{64, 128, 192, 256}
	}
	return []int{64, 128, 192, 256, 384}
}

// IterationsForSize returns how many timed repetitions a size gets. Small
// operands finish in microseconds and need more samples to be stable.
func IterationsForSize(groups int) int {
	switch {
	case groups <= 64:
		return 15
	case groups <= 192:
		return 7
	default:
		return 3
	}
}
