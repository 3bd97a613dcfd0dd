package tui

import "time"

var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// DurationRing keeps the most recent evaluation times, oldest first.
type DurationRing struct {
	buf   []time.Duration
	next  int
	count int
}

// NewDurationRing creates a ring holding at most size samples. A
// non-positive size is treated as 1.
func NewDurationRing(size int) *DurationRing {
	return &DurationRing{buf: make([]time.Duration, max(size, 1))}
}

// Add records a sample, evicting the oldest when full.
func (r *DurationRing) Add(d time.Duration) {
	r.buf[r.next] = d
	r.next = (r.next + 1) % len(r.buf)
	r.count = min(r.count+1, len(r.buf))
}

// Len returns the number of samples held.
func (r *DurationRing) Len() int { return r.count }

// Last returns the newest sample, or 0 when empty.
func (r *DurationRing) Last() time.Duration {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.next-1+len(r.buf))%len(r.buf)]
}

// Values returns the samples oldest first.
func (r *DurationRing) Values() []time.Duration {
	out := make([]time.Duration, r.count)
	first := (r.next - r.count + len(r.buf)) % len(r.buf)
	for i := range out {
		out[i] = r.buf[(first+i)%len(r.buf)]
	}
	return out
}

// Clear drops every sample.
func (r *DurationRing) Clear() {
	r.next, r.count = 0, 0
}

// RenderSparkline draws one block per sample, scaled against the slowest
// sample. Only the last width samples are drawn when width > 0.
func RenderSparkline(samples []time.Duration, width int) string {
	if width > 0 && len(samples) > width {
		samples = samples[len(samples)-width:]
	}
	if len(samples) == 0 {
		return ""
	}
	var peak time.Duration
	for _, d := range samples {
		peak = max(peak, d)
	}
	runes := make([]rune, len(samples))
	for i, d := range samples {
		level := 0
		if peak > 0 && d > 0 {
			level = int(int64(d) * int64(len(sparkBlocks)-1) / int64(peak))
		}
		runes[i] = sparkBlocks[level]
	}
	return string(runes)
}
