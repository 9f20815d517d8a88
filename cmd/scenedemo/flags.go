package main

import (
	"flag"

	"simplescene/internal/config"
)

// parseSettings reads command-line overrides into the config package. Unset
// flags keep the config defaults; out-of-range values are clamped by the setters.
func parseSettings(args []string) error {
	fs := flag.NewFlagSet("scenedemo", flag.ContinueOnError)
	seed := fs.Int64("seed", config.GetSeed(), "seed for every random stream of the demo")
	capacity := fs.Int("particles", config.GetParticleCapacity(), "particle pool capacity")
	fps := fs.Int("fps", config.GetFPSLimit(), "frame cap, 0 for uncapped")
	slow := fs.Duration("slow-frame", config.GetSlowFrameThreshold(), "log frames slower than this")
	bones := fs.Bool("bones", config.GetSkeletonDebugDraw(), "draw skeleton joints and bones")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config.SetSeed(*seed)
	config.SetParticleCapacity(*capacity)
	config.SetFPSLimit(*fps)
	config.SetSlowFrameThreshold(*slow)
	config.SetSkeletonDebugDraw(*bones)
	return nil
}
