// Package analyzer classifies wallpaper images as dark or light.
//
// Every pixel of a small working image is converted from gamma-encoded sRGB
// to CIE L* perceptual lightness; a zone-weighted average (top third of the
// image counting for more than the bottom) feeds a two-stage rule: clearly
// bright images are Light outright, borderline-dark images with a clearly
// bright top band are rescued to Light, everything else is Dark.
//
// Analysis is best-effort by design: a file that cannot be read or decoded
// produces no result rather than an error, and must never block the caller's
// workflow. The package is stateless; all functions are safe for concurrent
// use.
package analyzer

import (
	"image"

	"go-wallpaper-brightness/internal/logger"
	"go-wallpaper-brightness/pkg/models"
)

// Analyze classifies the image file at path using the default options.
// The boolean is false when no classification could be produced (missing
// file, undecodable data, zero-dimension image); such failures are logged at
// debug level and otherwise absorbed.
func Analyze(path string) (models.AnalysisResult, bool) {
	return AnalyzeWithOptions(path, DefaultOptions())
}

// AnalyzeWithOptions is Analyze with explicit options.
func AnalyzeWithOptions(path string, opts AnalysisOptions) (models.AnalysisResult, bool) {
	working, err := loadWorkingImage(path, opts.MaxDimension)
	if err != nil {
		logger.WithError(err).WithField("path", path).Debug("brightness analysis skipped")
		return models.AnalysisResult{}, false
	}
	return analyzeWorkingImage(working, opts)
}

// AnalyzeImage classifies an already-decoded pixel buffer using the default
// options. The image is downsampled to the working resolution first, exactly
// as the file-path entry point does.
func AnalyzeImage(img image.Image) (models.AnalysisResult, bool) {
	return AnalyzeImageWithOptions(img, DefaultOptions())
}

// AnalyzeImageWithOptions is AnalyzeImage with explicit options.
func AnalyzeImageWithOptions(img image.Image, opts AnalysisOptions) (models.AnalysisResult, bool) {
	if img == nil {
		return models.AnalysisResult{}, false
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		logger.Debug("brightness analysis skipped: zero-dimension image")
		return models.AnalysisResult{}, false
	}
	return analyzeWorkingImage(resampleImage(img, opts.MaxDimension), opts)
}

func analyzeWorkingImage(working image.Image, opts AnalysisOptions) (models.AnalysisResult, bool) {
	stats := collectLightness(working, opts)
	if stats.pixels == 0 {
		return models.AnalysisResult{}, false
	}

	total := float64(stats.pixels)
	return models.AnalysisResult{
		AverageRawBrightness: stats.avgRawLuma,
		Category:             classify(stats, opts),
		DarkPixelPercentage:  float64(stats.darkPixels) * 100 / total,
		LightPixelPercentage: float64(stats.lightPixels) * 100 / total,
		WeightedLightness:    stats.weightedLightness,
		TopZoneLightness:     stats.topZoneLightness,
	}, true
}

// classify applies the two-stage rule: Light on a bright weighted average,
// Light via bright-sky rescue when a borderline-dark image has a clearly
// bright top band, Dark otherwise. There is no neutral verdict.
func classify(stats lightnessStats, opts AnalysisOptions) models.Category {
	switch {
	case stats.weightedLightness >= opts.LightThreshold:
		return models.CategoryLight
	case stats.weightedLightness >= opts.LightThreshold-opts.RescueMargin &&
		stats.topZoneLightness >= opts.RescueTopThreshold:
		return models.CategoryLight
	default:
		return models.CategoryDark
	}
}
