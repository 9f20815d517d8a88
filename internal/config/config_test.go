package config

import (
	"testing"
	"time"
)

func TestSettersClamp(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetParticleCapacity(GetParticleCapacity())
	defer SetSlowFrameThreshold(GetSlowFrameThreshold())

	tests := []struct {
		name string
		set  func()
		get  func() int64
		want int64
	}{
		{"fps negative", func() { SetFPSLimit(-5) }, func() int64 { return int64(GetFPSLimit()) }, 0},
		{"fps too high", func() { SetFPSLimit(5000) }, func() int64 { return int64(GetFPSLimit()) }, 1000},
		{"fps ok", func() { SetFPSLimit(60) }, func() int64 { return int64(GetFPSLimit()) }, 60},
		{"capacity low", func() { SetParticleCapacity(1) }, func() int64 { return int64(GetParticleCapacity()) }, 16},
		{"capacity high", func() { SetParticleCapacity(1 << 30) }, func() int64 { return int64(GetParticleCapacity()) }, 1 << 20},
		{"slow frame", func() { SetSlowFrameThreshold(0) }, func() int64 { return int64(GetSlowFrameThreshold()) }, int64(time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			if got := tt.get(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
