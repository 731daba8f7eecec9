package gateway

import (
	"encoding/json"
	"fmt"
)

// Result is the normalized outcome of one backend call. Transport and
// HTTP failures are carried as the failed variant, never as Go errors:
// an error return from the client is reserved for programmer mistakes
// (unserializable body, broken path).
type Result struct {
	Success    bool
	Message    string
	Err        string
	StatusCode int
	// Data is the parsed payload exactly as the server sent it.
	// Schema trust is delegated to the domain services.
	Data json.RawMessage
	// Token is the top-level credential some auth responses carry
	// next to the payload.
	Token string
}

// Typed is a Result whose payload has been decoded into a concrete
// domain type by a service.
type Typed[T any] struct {
	Success bool
	Message string
	Err     string
	Token   string
	Data    T
}

// Failure builds a failed typed result carrying the given message.
func Failure[T any](message string) Typed[T] {
	return Typed[T]{Message: message}
}

// As decodes the raw payload of r into T. A failed result passes
// through unchanged; a payload that does not match T becomes a failed
// result rather than a partial value.
func As[T any](r Result) Typed[T] {
	out := Typed[T]{
		Success: r.Success,
		Message: r.Message,
		Err:     r.Err,
		Token:   r.Token,
	}
	if !r.Success {
		return out
	}
	if isEmptyJSON(r.Data) {
		return out
	}
	if err := json.Unmarshal(r.Data, &out.Data); err != nil {
		return Typed[T]{
			Message: "Invalid server response",
			Err:     fmt.Sprintf("decode payload: %v", err),
			Token:   r.Token,
		}
	}
	return out
}

// envelope is the fixed response shape of the backend. The `data`
// field is authoritative; `user` is a legacy alias some auth
// endpoints still emit and is honored second.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
	Token   string          `json:"token"`
}
