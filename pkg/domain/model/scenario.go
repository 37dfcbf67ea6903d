package model

import (
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// RiskScenario represents a named threat-to-asset pairing within an
// assessment. Inherent figures are inputs; current and residual figures
// are always derivable from the inherent figures plus the scenario's
// control set, and are recomputed on every scoring pass.
type RiskScenario struct {
	ID           int64
	AssessmentID types.AssessmentID
	ThreatID     types.ThreatID
	AssetName    string

	InherentLikelihood int
	InherentImpact     int
	Vulnerability      int // 1-5, 0 when not assessed
	InherentScore      int // product of the available factors

	CurrentLikelihood float64
	CurrentImpact     float64
	CurrentLevel      types.RiskLevel

	ResidualLikelihood float64
	ResidualImpact     float64
	ResidualLevel      types.RiskLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}
