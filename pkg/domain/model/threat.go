package model

import (
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// ThreatMetadata is static reference data for a threat type, loaded from
// the scoring catalog. TypicalImpact is the default impact label used
// when no scenario-specific impact signal exists.
type ThreatMetadata struct {
	ID            types.ThreatID
	Name          string
	Description   string
	TypicalImpact types.ScaleLabel
}
