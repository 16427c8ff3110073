package api

import "fmt"

// NetworkError means the request never produced a response (DNS failure,
// refused connection, timeout at the transport).
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError means the backend answered with a non-2xx status.
type ServerError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s %s: %s", e.Method, e.Path, e.Status)
}
