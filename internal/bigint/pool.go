package bigint

import (
	"math/bits"
	"sync"
)

// Transform buffers are pooled by power-of-two length so that repeated
// large multiplications, as in Pow, do not churn the garbage collector.
// Lengths above 1<<maxPooledLog are allocated directly.
const maxPooledLog = 24

var complexPools [maxPooledLog + 1]sync.Pool

// poolIndex returns the size class of a power-of-two length n, or -1 when
// n is not pooled.
func poolIndex(n int) int {
	if n <= 0 || n&(n-1) != 0 {
		return -1
	}
	idx := bits.TrailingZeros(uint(n))
	if idx > maxPooledLog {
		return -1
	}
	return idx
}

// acquireComplex returns a zeroed buffer of length n, a power of two.
func acquireComplex(n int) []complex128 {
	idx := poolIndex(n)
	if idx < 0 {
		return make([]complex128, n)
	}
	if v, ok := complexPools[idx].Get().(*[]complex128); ok {
		buf := *v
		clear(buf)
		return buf
	}
	return make([]complex128, n)
}

// releaseComplex returns buf to its pool. Buffers of unpooled lengths are
// left to the garbage collector.
func releaseComplex(buf []complex128) {
	idx := poolIndex(len(buf))
	if idx < 0 || cap(buf) != len(buf) {
		return
	}
	complexPools[idx].Put(&buf)
}
