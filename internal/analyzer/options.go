package analyzer

import "fmt"

// AnalysisOptions provides flexible configuration for brightness analysis.
// The defaults are the tuned production values; tests and experiments can
// derive variants through the With* builders.
type AnalysisOptions struct {
	// MaxDimension is the working-image bound: the decoded image is scaled
	// down (never up) so that neither side exceeds it.
	MaxDimension int

	// Zone weights for the three horizontal bands. The top band counts for
	// more because skies and backgrounds dominate how bright a wallpaper
	// reads; the bottom band (ground, foreground) counts for less.
	TopZoneWeight    float64
	MiddleZoneWeight float64
	BottomZoneWeight float64

	// PixelDarkThreshold splits individual pixels into the dark/light
	// buckets (CIE L* scale). It sits below the neutral midpoint 50 and is
	// independent of LightThreshold; the two are tuned separately.
	PixelDarkThreshold float64

	// LightThreshold is the weighted-average L* at which an image is Light
	// outright. RescueMargin opens a band below it where a bright top zone
	// (mean L* at or above RescueTopThreshold) rescues the verdict to Light.
	LightThreshold     float64
	RescueMargin       float64
	RescueTopThreshold float64

	// MaxWorkers bounds batch parallelism; <= 0 means the logical CPU count.
	MaxWorkers int
}

// DefaultOptions returns the production analysis options.
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{
		MaxDimension:       100,
		TopZoneWeight:      1.5,
		MiddleZoneWeight:   1.0,
		BottomZoneWeight:   0.7,
		PixelDarkThreshold: 42.0,
		LightThreshold:     45.0,
		RescueMargin:       6.0,
		RescueTopThreshold: 55.0,
		MaxWorkers:         0,
	}
}

// WithMaxWorkers returns options with the batch worker bound replaced.
func (opts AnalysisOptions) WithMaxWorkers(workers int) AnalysisOptions {
	opts.MaxWorkers = workers
	return opts
}

// WithZoneWeights returns options with custom band weights.
func (opts AnalysisOptions) WithZoneWeights(top, middle, bottom float64) AnalysisOptions {
	opts.TopZoneWeight = top
	opts.MiddleZoneWeight = middle
	opts.BottomZoneWeight = bottom
	return opts
}

// WithThresholds returns options with custom classification thresholds.
func (opts AnalysisOptions) WithThresholds(light, rescueMargin, rescueTop float64) AnalysisOptions {
	opts.LightThreshold = light
	opts.RescueMargin = rescueMargin
	opts.RescueTopThreshold = rescueTop
	return opts
}

// Validate reports the first configuration problem, if any.
func (opts AnalysisOptions) Validate() error {
	if opts.MaxDimension <= 0 {
		return fmt.Errorf("MaxDimension must be > 0 (got %d)", opts.MaxDimension)
	}
	if opts.TopZoneWeight <= 0 || opts.MiddleZoneWeight <= 0 || opts.BottomZoneWeight <= 0 {
		return fmt.Errorf("zone weights must be > 0 (got top=%g, middle=%g, bottom=%g)",
			opts.TopZoneWeight, opts.MiddleZoneWeight, opts.BottomZoneWeight)
	}
	for _, t := range []struct {
		name  string
		value float64
	}{
		{"PixelDarkThreshold", opts.PixelDarkThreshold},
		{"LightThreshold", opts.LightThreshold},
		{"RescueTopThreshold", opts.RescueTopThreshold},
	} {
		if t.value < 0 || t.value > 100 {
			return fmt.Errorf("%s must be within the L* range [0,100] (got %g)", t.name, t.value)
		}
	}
	if opts.RescueMargin < 0 {
		return fmt.Errorf("RescueMargin must be >= 0 (got %g)", opts.RescueMargin)
	}
	return nil
}
