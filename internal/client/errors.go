package client

import (
	"fmt"
	"strings"

	"github.com/sangkips/lanchonete-pos/pkg/apperror"
)

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a response outside the 2xx range.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Fields  []apperror.FieldError
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + " " + f.Message
		}
		msg += ": " + strings.Join(parts, "; ")
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}
