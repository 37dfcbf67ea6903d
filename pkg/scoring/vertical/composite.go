package vertical

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// The composite scorers produce a facility-level 0-100 rollup that is
// independent of the likelihood x impact model: threshold bands on a
// leading loss metric, capped additive penalties for control gaps, a
// capped per-item bonus, and capped incident-history flags. The rule
// pattern is shared; only the tables differ per vertical.

// Band awards Points when the metric value is below Below. Bands are
// evaluated in order; the last band's Below is ignored (catch-all).
type Band struct {
	Below  float64
	Points int
}

// GapPenalty is a control gap observed on the facility profile
type GapPenalty struct {
	Code    string
	Missing bool
	Points  int
}

// IncidentFlag is a prior-incident signal observed on the profile
type IncidentFlag struct {
	Code     string
	Occurred bool
	Points   int
}

// CompositeSpec parameterizes the shared composite scoring rules
type CompositeSpec struct {
	MetricBands  []Band
	GapCap       int
	BonusPerItem int
	BonusCap     int
	IncidentCap  int
}

// CompositeResult is the outcome of a composite scoring pass
type CompositeResult struct {
	Total int
	Level types.CompositeLevel

	MetricPoints   int
	GapPoints      int
	BonusPoints    int
	IncidentPoints int
}

// Score applies the parameterized rule tables to the extracted profile signals
func (s *CompositeSpec) Score(metric float64, gaps []GapPenalty, itemCount int, incidents []IncidentFlag) CompositeResult {
	result := CompositeResult{}

	for i, band := range s.MetricBands {
		if i == len(s.MetricBands)-1 || metric < band.Below {
			result.MetricPoints = band.Points
			break
		}
	}

	for _, gap := range gaps {
		if gap.Missing {
			result.GapPoints += gap.Points
		}
	}
	result.GapPoints = capAt(result.GapPoints, s.GapCap)

	if itemCount > 0 {
		result.BonusPoints = capAt(itemCount*s.BonusPerItem, s.BonusCap)
	}

	for _, incident := range incidents {
		if incident.Occurred {
			result.IncidentPoints += incident.Points
		}
	}
	result.IncidentPoints = capAt(result.IncidentPoints, s.IncidentCap)

	result.Total = result.MetricPoints + result.GapPoints + result.BonusPoints + result.IncidentPoints
	result.Level = classifyComposite(result.Total)
	return result
}

func capAt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

func classifyComposite(total int) types.CompositeLevel {
	switch {
	case total < 25:
		return types.CompositeLevelLow
	case total < 50:
		return types.CompositeLevelMedium
	case total < 75:
		return types.CompositeLevelHigh
	default:
		return types.CompositeLevelCritical
	}
}

// shrinkageSpec is the retail composite rule table: shrinkage-rate bands,
// control-gap penalties capped at 25, +2 per high-value category capped
// at 10, incident flags capped at 15.
var shrinkageSpec = CompositeSpec{
	MetricBands: []Band{
		{Below: 1.5, Points: 0},
		{Below: 2.5, Points: 10},
		{Points: 25},
	},
	GapCap:       25,
	BonusPerItem: 2,
	BonusCap:     10,
	IncidentCap:  15,
}

// ShrinkageScore computes the retail shrinkage-risk composite score from
// a retail profile
func ShrinkageScore(p *model.RetailProfile) CompositeResult {
	gaps := []GapPenalty{
		{Code: "eas", Missing: !p.HasEAS, Points: 15},
		{Code: "pos-cctv", Missing: !p.HasPOSCCTV, Points: 10},
		{Code: "lp-staff", Missing: !p.HasLPStaff, Points: 10},
		{Code: "cash-drop-safe", Missing: !p.HasCashDropSafe, Points: 5},
	}
	incidents := []IncidentFlag{
		{Code: "robbery", Occurred: p.PriorRobberies > 0, Points: 8},
		{Code: "burglary", Occurred: p.PriorBurglaries > 0, Points: 5},
		{Code: "internal-theft", Occurred: p.PriorInternalTheft > 0, Points: 4},
	}

	return shrinkageSpec.Score(p.ShrinkageRate, gaps, p.HighValueCategories, incidents)
}

// cargoLossSpec is the warehouse composite rule table
var cargoLossSpec = CompositeSpec{
	MetricBands: []Band{
		{Below: 0.5, Points: 0},
		{Below: 1.5, Points: 10},
		{Points: 25},
	},
	GapCap:       25,
	BonusPerItem: 3,
	BonusCap:     12,
	IncidentCap:  15,
}

// CargoLossScore computes the warehouse cargo-loss composite score from
// a warehouse profile
func CargoLossScore(p *model.WarehouseProfile) CompositeResult {
	gaps := []GapPenalty{
		{Code: "perimeter-fencing", Missing: !p.HasPerimeterFencing, Points: 10},
		{Code: "cctv-coverage", Missing: !p.HasCCTVCoverage, Points: 10},
		{Code: "guard-patrol", Missing: !p.HasGuardPatrol, Points: 8},
		{Code: "dock-access-control", Missing: !p.HasDockAccessControl, Points: 7},
	}
	incidents := []IncidentFlag{
		{Code: "cargo-theft", Occurred: p.PriorCargoThefts > 0, Points: 10},
		{Code: "trespass", Occurred: p.PriorTrespasses > 0, Points: 5},
	}

	return cargoLossSpec.Score(p.LossRate, gaps, p.HighValueSKUs, incidents)
}
