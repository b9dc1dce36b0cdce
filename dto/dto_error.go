package dto

type ErrorResponse struct {
	Error string `json:"error" example:"Post not found"`
}
