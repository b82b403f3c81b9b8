package dto

// Envelope is the standard success wrapper for API responses.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Count   *int `json:"count,omitempty"`
}

// ErrorEnvelope is the standard error wrapper for API responses.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKCount wraps a list payload in a success envelope with its item count.
func OKCount(data any, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// Error builds an error envelope. The message carries detail suitable for
// display; the error field is the short machine-readable summary.
func Error(err string, message string) ErrorEnvelope {
	return ErrorEnvelope{Success: false, Error: err, Message: message}
}
