package types

// ErrorResponse is the generic error body returned by controllers
type ErrorResponse struct {
	Error string `json:"error"`
}

