package types

// ScaleLabel represents a semantic label on the shared 5-tier
// likelihood/impact scale. The scale is fixed and shared across all
// verticals; numeric values are assigned in pkg/scoring.
type ScaleLabel string

const (
	ScaleVeryLow  ScaleLabel = "very-low"
	ScaleLow      ScaleLabel = "low"
	ScaleMedium   ScaleLabel = "medium"
	ScaleHigh     ScaleLabel = "high"
	ScaleVeryHigh ScaleLabel = "very-high"
)

// AllScaleLabels returns all valid scale labels in ascending severity order
func AllScaleLabels() []ScaleLabel {
	return []ScaleLabel{
		ScaleVeryLow,
		ScaleLow,
		ScaleMedium,
		ScaleHigh,
		ScaleVeryHigh,
	}
}

// IsValid checks if the scale label is valid
func (s ScaleLabel) IsValid() bool {
	switch s {
	case ScaleVeryLow, ScaleLow, ScaleMedium, ScaleHigh, ScaleVeryHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the scale label
func (s ScaleLabel) String() string {
	return string(s)
}
