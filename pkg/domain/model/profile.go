package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// RetailProfile holds the retail-specific facility data consumed by the
// retail composite scorer. Financial figures are tagged for log redaction.
type RetailProfile struct {
	AnnualRevenue float64 `masq:"secret"`
	ShrinkageRate float64 // inventory loss as percent of revenue

	HighValueCategories int // count of high-value merchandise categories

	HasEAS          bool // electronic article surveillance at exits
	HasPOSCCTV      bool // camera coverage of point-of-sale areas
	HasLPStaff      bool // dedicated loss prevention staff
	HasCashDropSafe bool

	PriorRobberies     int
	PriorBurglaries    int
	PriorInternalTheft int
}

// Validate checks if the retail profile is within its declared domain
func (p *RetailProfile) Validate() error {
	if p.ShrinkageRate < 0 {
		return goerr.New("shrinkage rate cannot be negative", goerr.V("rate", p.ShrinkageRate))
	}
	if p.AnnualRevenue < 0 {
		return goerr.New("annual revenue cannot be negative")
	}
	if p.HighValueCategories < 0 {
		return goerr.New("high value category count cannot be negative", goerr.V("count", p.HighValueCategories))
	}
	if p.PriorRobberies < 0 || p.PriorBurglaries < 0 || p.PriorInternalTheft < 0 {
		return goerr.New("incident counts cannot be negative")
	}
	return nil
}

// WarehouseProfile holds the warehouse-specific facility data consumed by
// the warehouse composite scorer.
type WarehouseProfile struct {
	InventoryValue float64 `masq:"secret"`
	LossRate       float64 // inventory loss as percent of throughput

	HighValueSKUs int

	HasPerimeterFencing  bool
	HasCCTVCoverage      bool
	HasGuardPatrol       bool
	HasDockAccessControl bool

	PriorCargoThefts int
	PriorTrespasses  int
}

// Validate checks if the warehouse profile is within its declared domain
func (p *WarehouseProfile) Validate() error {
	if p.LossRate < 0 {
		return goerr.New("loss rate cannot be negative", goerr.V("rate", p.LossRate))
	}
	if p.InventoryValue < 0 {
		return goerr.New("inventory value cannot be negative")
	}
	if p.HighValueSKUs < 0 {
		return goerr.New("high value SKU count cannot be negative", goerr.V("count", p.HighValueSKUs))
	}
	if p.PriorCargoThefts < 0 || p.PriorTrespasses < 0 {
		return goerr.New("incident counts cannot be negative")
	}
	return nil
}
