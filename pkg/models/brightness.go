package models

// Category is the binary brightness verdict for a wallpaper.
// Earlier iterations of this logic carried a third "neutral" bucket; the
// current design is strictly two-way and a neutral value must not come back.
type Category string

const (
	CategoryDark  Category = "dark"
	CategoryLight Category = "light"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is a recognized value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDark, CategoryLight:
		return true
	}
	return false
}

// Name returns a display name suitable for UI labels.
func (c Category) Name() string {
	switch c {
	case CategoryDark:
		return "Dark"
	case CategoryLight:
		return "Light"
	}
	return "Unknown"
}

// Icon returns a glyph used by wallpaper pickers next to the category name.
func (c Category) Icon() string {
	switch c {
	case CategoryDark:
		return "\U0001F319" // crescent moon
	case CategoryLight:
		return "☀"
	}
	return ""
}

// AnalysisResult is the outcome of one wallpaper brightness analysis.
// It is created in full by a single analysis pass and never mutated after.
type AnalysisResult struct {
	// AverageRawBrightness is the mean ITU-R BT.601 luma over the working
	// image, in [0,255]. Reported for display and debugging only; it plays
	// no part in the classification.
	AverageRawBrightness float64 `json:"average_raw_brightness"`

	// Category is the Dark/Light verdict.
	Category Category `json:"category"`

	// DarkPixelPercentage and LightPixelPercentage partition every pixel of
	// the working image into exactly two buckets by perceptual lightness;
	// they always sum to 100.
	DarkPixelPercentage  float64 `json:"dark_pixel_percentage"`
	LightPixelPercentage float64 `json:"light_pixel_percentage"`

	// WeightedLightness is the zone-weighted mean CIE L* the verdict is
	// derived from. TopZoneLightness is the unweighted mean L* of the top
	// third, consulted by the bright-sky rescue rule. Both are diagnostic
	// values, like the bucket percentages.
	WeightedLightness float64 `json:"weighted_lightness"`
	TopZoneLightness  float64 `json:"top_zone_lightness"`
}
