// Package web defines common components for a web application.
package web

// Response holds the common response envelope for all APIs.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success wraps data into a successful response envelope.
func Success(data any) Response {
	return Response{OK: true, Data: data}
}

// Info wraps data into a successful envelope carrying an informational message.
func Info(message string, data any) Response {
	return Response{OK: true, Message: message, Data: data}
}

// Error wraps a given err into an error response envelope.
func Error(err error) Response {
	return Response{OK: false, Message: err.Error()}
}
