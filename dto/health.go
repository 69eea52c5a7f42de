package dto

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	Status string `json:"status"`
}

// GreetingResponse is returned on / when the dashboard is disabled
type GreetingResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
}

// ErrorResponse is the body of every 5xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}
