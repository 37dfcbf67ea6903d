package model

import (
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/google/uuid"
)

// Assessment represents a single facility risk assessment. The template
// determines which vertical adapter and scoring paradigm apply; that
// routing is resolved from the scoring catalog, not stored here.
type Assessment struct {
	ID           types.AssessmentID
	Name         string
	FacilityName string
	TemplateID   types.TemplateID

	// At most one vertical profile is set, matching the template's vertical.
	RetailProfile    *RetailProfile
	WarehouseProfile *WarehouseProfile

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAssessmentID generates a new unique assessment ID
func NewAssessmentID() types.AssessmentID {
	return types.AssessmentID(uuid.New().String())
}
