package types

// ControlType distinguishes controls that are already in place from
// controls that are only proposed as risk treatments.
type ControlType string

const (
	ControlTypeExisting ControlType = "existing"
	ControlTypeProposed ControlType = "proposed"
)

// IsValid checks if the control type is valid
func (t ControlType) IsValid() bool {
	switch t {
	case ControlTypeExisting, ControlTypeProposed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the control type
func (t ControlType) String() string {
	return string(t)
}

// PrimaryEffect declares which risk axis a proposed control reduces.
// Existing controls carry no effect tag: they are applied to the
// likelihood axis only (see scoring.CurrentRisk).
type PrimaryEffect string

const (
	EffectReduceLikelihood PrimaryEffect = "reduce_likelihood"
	EffectReduceImpact     PrimaryEffect = "reduce_impact"
)

// IsValid checks if the primary effect is valid
func (e PrimaryEffect) IsValid() bool {
	switch e {
	case EffectReduceLikelihood, EffectReduceImpact:
		return true
	default:
		return false
	}
}

// String returns the string representation of the primary effect
func (e PrimaryEffect) String() string {
	return string(e)
}
