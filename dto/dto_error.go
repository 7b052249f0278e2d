package dto

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationError lists what failed inside a 400 response.
type ValidationError struct {
	Message string                `json:"message"`
	Errors  []ValidationErrorItem `json:"errors"`
}

type ValidationErrorItem struct {
	Path      string `json:"path"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}
