package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
