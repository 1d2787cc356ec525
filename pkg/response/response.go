package response

// ErrorResponse is the failure envelope. The key is "detail" to match the
// contract the service's clients already consume.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
