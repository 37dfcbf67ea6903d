package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Assessment() AssessmentRepository
	Scenario() ScenarioRepository
	Control() ControlRepository
	Response() ResponseRepository

	// Close releases any resources held by the backend
	Close() error
}
