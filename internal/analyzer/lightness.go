package analyzer

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// sRGB transfer function breakpoint.
	srgbLinearCutoff = 0.04045

	// CIE L* constants: the cube-root form applies above cieEpsilon, the
	// linear form (scaled by cieKappa) below it.
	cieEpsilon = 0.008856
	cieKappa   = 903.3
)

// rawLuma returns the ITU-R BT.601 luma of 8-bit channel values, in [0,255].
// It is a gamma-space approximation kept for reporting only.
func rawLuma(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// srgbToLinear removes the sRGB gamma encoding from a [0,1] channel value.
func srgbToLinear(c float64) float64 {
	if c <= srgbLinearCutoff {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// relativeLuminance combines linear-light channels with the BT.709
// coefficients, which are the correct weights for sRGB primaries.
func relativeLuminance(rl, gl, bl float64) float64 {
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// cieLightness maps relative luminance to CIE L*, roughly [0,100].
func cieLightness(y float64) float64 {
	if y > cieEpsilon {
		return 116*math.Cbrt(y) - 16
	}
	return cieKappa * y
}

// pixelLightness runs the full pipeline for one pixel: 8-bit sRGB channels
// to perceptual lightness.
func pixelLightness(r, g, b float64) float64 {
	return cieLightness(relativeLuminance(
		srgbToLinear(r/255),
		srgbToLinear(g/255),
		srgbToLinear(b/255),
	))
}

// lightnessStats holds the aggregates of one pass over a working image.
type lightnessStats struct {
	avgRawLuma        float64
	weightedLightness float64
	topZoneLightness  float64
	darkPixels        int
	lightPixels       int
	pixels            int
}

// collectLightness walks the working image once, converting every pixel to
// CIE L* and accumulating the zone-weighted aggregates. Rows are split into
// horizontal thirds: [0,H/3) is the top band, [H/3,2H/3) the middle, the
// remainder the bottom. Alpha is ignored.
func collectLightness(img image.Image, opts AnalysisOptions) lightnessStats {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return lightnessStats{}
	}

	lumas := make([]float64, 0, width*height)
	lightness := make([]float64, 0, width*height)
	weights := make([]float64, 0, width*height)
	var topZone []float64

	topEnd := bounds.Min.Y + height/3
	middleEnd := bounds.Min.Y + 2*height/3

	stats := lightnessStats{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		zoneWeight := opts.BottomZoneWeight
		switch {
		case y < topEnd:
			zoneWeight = opts.TopZoneWeight
		case y < middleEnd:
			zoneWeight = opts.MiddleZoneWeight
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rf, gf, bf := float64(r>>8), float64(g>>8), float64(b>>8)

			lumas = append(lumas, rawLuma(rf, gf, bf))

			l := pixelLightness(rf, gf, bf)
			lightness = append(lightness, l)
			weights = append(weights, zoneWeight)
			if y < topEnd {
				topZone = append(topZone, l)
			}

			if l < opts.PixelDarkThreshold {
				stats.darkPixels++
			} else {
				stats.lightPixels++
			}
		}
	}

	stats.pixels = len(lightness)
	stats.avgRawLuma = stat.Mean(lumas, nil)
	stats.weightedLightness = stat.Mean(lightness, weights)
	// Images shorter than three rows have an empty top band; the rescue rule
	// simply never fires for them.
	if len(topZone) > 0 {
		stats.topZoneLightness = stat.Mean(topZone, nil)
	}
	return stats
}
