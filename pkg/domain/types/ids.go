package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// AssessmentID represents a unique identifier for an assessment
type AssessmentID string

// Validate checks if the AssessmentID is valid
func (a AssessmentID) Validate() error {
	if a == "" {
		return goerr.New("assessment ID cannot be empty")
	}
	return nil
}

// String returns the string representation of AssessmentID
func (a AssessmentID) String() string {
	return string(a)
}

// ThreatID represents a unique identifier for a threat type
type ThreatID string

// Validate checks if the ThreatID is valid
func (t ThreatID) Validate() error {
	if t == "" {
		return goerr.New("threat ID cannot be empty")
	}
	if !idPattern.MatchString(string(t)) {
		return goerr.New("threat ID must be lowercase alphanumeric with hyphens", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of ThreatID
func (t ThreatID) String() string {
	return string(t)
}

// QuestionID represents a unique identifier for a survey question
type QuestionID string

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !idPattern.MatchString(string(q)) {
		return goerr.New("question ID must be lowercase alphanumeric with hyphens", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}

// TemplateID represents a unique identifier for an assessment template
type TemplateID string

// Validate checks if the TemplateID is valid
func (t TemplateID) Validate() error {
	if t == "" {
		return goerr.New("template ID cannot be empty")
	}
	if !idPattern.MatchString(string(t)) {
		return goerr.New("template ID must be lowercase alphanumeric with hyphens", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of TemplateID
func (t TemplateID) String() string {
	return string(t)
}
