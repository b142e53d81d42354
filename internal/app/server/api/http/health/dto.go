package health

// Input represents the input for health check endpoint
type Input struct{}

// Response represents the health check payload
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}
