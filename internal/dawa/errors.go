package dawa

import (
	"fmt"
	"strings"
)

// TransportError reports that the registry could not be reached at all:
// DNS, connection, TLS, or a failure while reading the response body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RegistryError is returned when the registry answers with anything other
// than 200 OK. Body holds the response text exactly as received.
type RegistryError struct {
	StatusCode int
	Body       string
}

// Error returns the registry's body text, trimmed of surrounding whitespace.
func (e *RegistryError) Error() string {
	return strings.TrimSpace(e.Body)
}

// DecodeError is returned when a 200 OK body is not a JSON array of
// well-formed address records.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode addresses: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
