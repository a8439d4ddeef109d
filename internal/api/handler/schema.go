package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is returned by operations with no body of their own.
type messageResponse struct {
	Message string `json:"message"`
}
