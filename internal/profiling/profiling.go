package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU time accumulator. Subsystems report with
//
//	defer profiling.Track("pkg.Type.Method")()
//
// and the frame loop calls ResetFrame once per frame.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameCalls  = make(map[string]int)

	// totals of the frame finished by the last ResetFrame
	lastTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		frameCalls[name]++
		mu.Unlock()
	}
}

// ResetFrame ends the current frame: its totals become LastFrame and the
// per-frame counters start from zero
func ResetFrame() {
	mu.Lock()
	lastTotals, frameTotals = frameTotals, lastTotals
	clear(frameTotals)
	clear(frameCalls)
	mu.Unlock()
}

// Snapshot returns a copy of the current per-frame totals
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return copyTotals(frameTotals)
}

// LastFrame returns a copy of the totals of the last completed frame
func LastFrame() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return copyTotals(lastTotals)
}

func copyTotals(m map[string]time.Duration) map[string]time.Duration {
	out := make(map[string]time.Duration, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Calls returns how many times name was tracked this frame
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return frameCalls[name]
}

// TopN formats the n most expensive entries of the current frame, e.g.
// "particles.System.Simulate:4.2ms, skeleton.Runtime.Update:0.3ms"
func TopN(n int) string {
	return formatTop(Snapshot(), n)
}

// LastFrameTopN is TopN over the last completed frame. Use it from code that
// runs early in a frame, before anything has been tracked.
func LastFrameTopN(n int) string {
	return formatTop(LastFrame(), n)
}

func formatTop(ss map[string]time.Duration, n int) string {
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] == ss[names[j]] {
			return names[i] < names[j]
		}
		return ss[names[i]] > ss[names[j]]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0"
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
