package config

import (
	"sync"
	"time"
)

// EngineSettings holds runtime tunables shared by the frame loop and the
// demo scene
type EngineSettings struct {
	mu                sync.RWMutex
	fpsLimit          int // 0 = unlimited
	particleCapacity  int
	slowFrame         time.Duration
	seed              int64
	skeletonDebugDraw bool
}

var globalSettings = &EngineSettings{
	fpsLimit:          120,
	particleCapacity:  4096,
	slowFrame:         16 * time.Millisecond,
	seed:              1,
	skeletonDebugDraw: true,
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame cap, clamped to [0, 1000]
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalSettings.fpsLimit = limit
}

// GetParticleCapacity returns the pool size of newly created particle systems
func GetParticleCapacity() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.particleCapacity
}

// SetParticleCapacity sets the particle pool size, clamped to [16, 1<<20]
func SetParticleCapacity(n int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if n < 16 {
		n = 16
	}
	if n > 1<<20 {
		n = 1 << 20
	}
	globalSettings.particleCapacity = n
}

// GetSlowFrameThreshold returns the frame time above which a frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow frame threshold (minimum 1ms)
func SetSlowFrameThreshold(d time.Duration) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if d < time.Millisecond {
		d = time.Millisecond
	}
	globalSettings.slowFrame = d
}

// GetSeed returns the seed used for emitters and field generators
func GetSeed() int64 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.seed
}

func SetSeed(seed int64) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.seed = seed
}

// GetSkeletonDebugDraw reports whether joint lines are drawn
func GetSkeletonDebugDraw() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.skeletonDebugDraw
}

func SetSkeletonDebugDraw(enabled bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.skeletonDebugDraw = enabled
}
