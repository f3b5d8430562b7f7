package analyzer

import (
	"image"
	"image/color"
	"testing"
)

func TestRawLuma(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure green dominates", 0, 255, 0, 0.587 * 255},
		{"pure blue contributes least", 0, 0, 255, 0.114 * 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawLuma(tt.r, tt.g, tt.b); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("rawLuma(%g,%g,%g) = %g, want %g", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestSrgbToLinear(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"linear segment", 0.04045, 0.04045 / 12.92},
		{"gamma segment midpoint", 0.5, 0.21404114048223255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := srgbToLinear(tt.in); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("srgbToLinear(%g) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestCieLightness(t *testing.T) {
	// White point maps to exactly 100, black to 0, and the linear branch
	// applies below the epsilon cutoff.
	if got := cieLightness(1); !almostEqual(got, 100, 1e-12) {
		t.Errorf("cieLightness(1) = %g, want 100", got)
	}
	if got := cieLightness(0); got != 0 {
		t.Errorf("cieLightness(0) = %g, want 0", got)
	}
	if got := cieLightness(0.005); !almostEqual(got, 903.3*0.005, 1e-12) {
		t.Errorf("cieLightness(0.005) = %g, want %g", got, 903.3*0.005)
	}
}

func TestPixelLightness_KnownGrays(t *testing.T) {
	tests := []struct {
		gray      uint8
		want      float64
		tolerance float64
	}{
		{255, 100, 1e-9},
		{0, 0, 1e-9},
		{119, 50, 0.2}, // sRGB mid-gray sits at L* ≈ 50
	}

	for _, tt := range tests {
		v := float64(tt.gray)
		if got := pixelLightness(v, v, v); !almostEqual(got, tt.want, tt.tolerance) {
			t.Errorf("pixelLightness(gray %d) = %g, want %g ± %g", tt.gray, got, tt.want, tt.tolerance)
		}
	}
}

func TestCollectLightness_ZoneWeighting(t *testing.T) {
	// 3 rows, one pixel each: top L*=100, middle and bottom L*=0. The
	// weighted mean must privilege the top band over a plain average.
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(0, 1, color.RGBA{0, 0, 0, 255})
	img.Set(0, 2, color.RGBA{0, 0, 0, 255})

	stats := collectLightness(img, DefaultOptions())
	if stats.pixels != 3 {
		t.Fatalf("Expected 3 pixels, got %d", stats.pixels)
	}

	want := 100 * 1.5 / (1.5 + 1.0 + 0.7)
	if !almostEqual(stats.weightedLightness, want, 1e-9) {
		t.Errorf("Expected weighted lightness %g, got %g", want, stats.weightedLightness)
	}
	if !almostEqual(stats.topZoneLightness, 100, 1e-9) {
		t.Errorf("Expected top zone lightness 100, got %g", stats.topZoneLightness)
	}
	if stats.darkPixels != 2 || stats.lightPixels != 1 {
		t.Errorf("Expected 2 dark / 1 light pixels, got %d / %d", stats.darkPixels, stats.lightPixels)
	}
}

func TestCollectLightness_ShortImageHasNoTopZone(t *testing.T) {
	// Two rows: H/3 == 0, so the top band is empty and the rescue input
	// stays at zero.
	img := createTestImage(4, 2, color.RGBA{255, 255, 255, 255})

	stats := collectLightness(img, DefaultOptions())
	if stats.topZoneLightness != 0 {
		t.Errorf("Expected zero top zone lightness for a 2-row image, got %g", stats.topZoneLightness)
	}
	if stats.pixels != 8 {
		t.Errorf("Expected 8 pixels, got %d", stats.pixels)
	}
}

func TestCollectLightness_PixelFormatIndependent(t *testing.T) {
	rgba := createTestImage(10, 10, color.RGBA{200, 200, 200, 255})
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			nrgba.Set(x, y, color.NRGBA{200, 200, 200, 255})
		}
	}

	a := collectLightness(rgba, DefaultOptions())
	b := collectLightness(nrgba, DefaultOptions())
	if !almostEqual(a.weightedLightness, b.weightedLightness, 1e-9) {
		t.Errorf("Expected identical lightness regardless of pixel format, got %g and %g",
			a.weightedLightness, b.weightedLightness)
	}
}
