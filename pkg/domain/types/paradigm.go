package types

// Paradigm selects which scoring model governs an assessment template.
// It is resolved once at template resolution time and threaded into the
// scoring pass as a value; there is no process-wide toggle.
type Paradigm string

const (
	// ParadigmControlWeighted is the scenario-level model: adapter-derived
	// likelihood, vulnerability and impact combined per scenario, with
	// per-control compound reduction for current and residual risk.
	ParadigmControlWeighted Paradigm = "control-weighted"

	// ParadigmSurveyFidelity derives a single aggregate control
	// effectiveness from weighted survey answers and applies it as one
	// multiplicative discount to the inherent score.
	ParadigmSurveyFidelity Paradigm = "survey-fidelity"
)

// IsValid checks if the paradigm is valid
func (p Paradigm) IsValid() bool {
	switch p {
	case ParadigmControlWeighted, ParadigmSurveyFidelity:
		return true
	default:
		return false
	}
}

// String returns the string representation of the paradigm
func (p Paradigm) String() string {
	return string(p)
}
