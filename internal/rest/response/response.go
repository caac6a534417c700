package response

import "time"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"

	DateTimeFormat = time.RFC3339Nano
)

// Body is the envelope every endpoint answers with.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func NewSuccess(data any) Body {
	return Body{Status: StatusSuccess, Data: data}
}

// NewFail is for errors caused by the client.
func NewFail(message string) Body {
	return Body{Status: StatusFail, Message: message}
}

func NewError(message string) Body {
	return Body{Status: StatusError, Message: message}
}
