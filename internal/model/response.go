package model

import "fmt"

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

func NewDeleteResponse(entity string, id string) DeleteResponse {
	return DeleteResponse{Message: fmt.Sprintf("%s with id %s has been deleted successfully.", entity, id)}
}
