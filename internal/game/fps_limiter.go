package game

import (
	"simplescene/internal/config"
	"time"
)

// pausedFPS caps the loop while the scene is frozen
const pausedFPS = 30

// spinWindow is the tail of each frame spent busy-waiting instead of sleeping
const spinWindow = 200 * time.Microsecond

// fpsCaps are the frame caps cycled through at runtime; 0 is uncapped
var fpsCaps = []int{30, 60, 120, 240, 0}

// nextFPSLimit returns the cap after current in fpsCaps. A value not in the
// list, e.g. one set from the command line, restarts the cycle.
func nextFPSLimit(current int) int {
	for i, c := range fpsCaps {
		if c == current {
			return fpsCaps[(i+1)%len(fpsCaps)]
		}
	}
	return fpsCaps[0]
}

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// frameInterval returns the target frame duration for a limit; 0 means uncapped
func frameInterval(limit int, paused bool) time.Duration {
	if paused {
		limit = pausedFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	target := frameInterval(config.GetFPSLimit(), paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch so we don't try to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
