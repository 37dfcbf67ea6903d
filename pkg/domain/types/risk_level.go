package types

// RiskLevel represents a qualitative risk classification derived from a
// combined likelihood x impact score. It is always recomputed from the
// numeric score, never stored independently of it.
type RiskLevel string

const (
	RiskLevelVeryLow  RiskLevel = "Very Low"
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// CompositeLevel represents the four-tier classification used by the
// 0-100 composite scorers, distinct from the five-tier RiskLevel.
type CompositeLevel string

const (
	CompositeLevelLow      CompositeLevel = "LOW"
	CompositeLevelMedium   CompositeLevel = "MEDIUM"
	CompositeLevelHigh     CompositeLevel = "HIGH"
	CompositeLevelCritical CompositeLevel = "CRITICAL"
)

// String returns the string representation of the composite level
func (c CompositeLevel) String() string {
	return string(c)
}
