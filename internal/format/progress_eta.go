package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressWithETA tracks how many items of a batch have completed and
// estimates the time remaining from a smoothed completion rate.
// It is not safe for concurrent use.
type ProgressWithETA struct {
	total        int
	done         int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // smoothed progress per second
}

// NewProgressWithETA creates a tracker for a batch of total items.
func NewProgressWithETA(total int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{total: total, startTime: now, lastUpdate: now}
}

// Progress returns the completed fraction in [0, 1].
func (p *ProgressWithETA) Progress() float64 {
	if p.total <= 0 {
		return 1
	}
	return min(float64(p.done)/float64(p.total), 1)
}

// Complete records one finished item and returns the new progress and ETA.
// The rate is smoothed exponentially so that a single slow item does not
// swing the estimate.
func (p *ProgressWithETA) Complete() (progress float64, eta time.Duration) {
	if p.done < p.total {
		p.done++
	}
	progress = p.Progress()

	now := time.Now()
	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 {
		instant := (progress - p.lastProgress) / dt
		if p.progressRate > 0 {
			p.progressRate = 0.7*p.progressRate + 0.3*instant
		} else if elapsed := now.Sub(p.startTime).Seconds(); elapsed > 0 {
			p.progressRate = progress / elapsed
		}
	}
	p.lastUpdate = now
	p.lastProgress = progress
	return progress, p.GetETA()
}

// GetETA returns the current estimate without recording progress.
func (p *ProgressWithETA) GetETA() time.Duration {
	progress := p.Progress()
	if p.progressRate <= 0 || progress >= 1.0 {
		return 0
	}
	eta := time.Duration((1.0 - progress) / p.progressRate * float64(time.Second))
	return min(eta, 24*time.Hour)
}

// FormatETA formats a duration into a short ETA string such as "< 1s",
// "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	if eta < time.Minute {
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	}
	if eta < time.Hour {
		minutes := int(eta.Minutes())
		if seconds := int(eta.Seconds()) % 60; seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}
	hours := int(eta.Hours())
	if minutes := int(eta.Minutes()) % 60; minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatProgressBarWithETA renders "45.00% [████░░░░] ETA: 2m30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", progress*100, ProgressBar(progress, width), FormatETA(eta))
}

// ProgressBar renders a bar of width cells filled in proportion to
// progress, which is clamped to [0, 1].
func ProgressBar(progress float64, width int) string {
	progress = max(0, min(progress, 1))
	filled := int(progress * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
