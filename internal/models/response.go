package models

// APIResponse is the uniform envelope returned by every endpoint.
// swagger:model APIResponse
type APIResponse struct {
	// HTTP status code mirrored in the body
	// example: 200
	StatusCode int `json:"statusCode"`

	// Endpoint-specific payload
	Data any `json:"data"`

	// Human-readable outcome message
	// example: Videos fetched successfully
	Message string `json:"message"`

	// Always true on the success path
	Success bool `json:"success"`
}

// APIErrorResponse is the uniform error envelope.
// swagger:model APIErrorResponse
type APIErrorResponse struct {
	// HTTP status code mirrored in the body
	// example: 404
	StatusCode int `json:"statusCode"`

	// Error message
	// example: Video not found
	Message string `json:"message"`

	// Always false on the error path
	Success bool `json:"success"`
}
