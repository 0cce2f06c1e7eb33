package shopapi

import (
	"encoding/json"
	"fmt"
)

// NetworkError is a transport-level failure: the request never produced a
// usable HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "shop api unreachable: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Message carries the backend's "error"
// field when the body had one, otherwise the HTTP status line.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("shop api error (%d): %s", e.Status, e.Message)
}

// ParseError is a response whose body could not be decoded into the
// expected shape. Decoding fails closed: a missing required field is a
// ParseError, never a silent zero value.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "shop api response malformed: " + e.Reason + ": " + e.Err.Error()
	}
	return "shop api response malformed: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func httpErrorFromBody(status int, statusLine string, body []byte) *HTTPError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &HTTPError{Status: status, Message: payload.Error}
	}
	return &HTTPError{Status: status, Message: statusLine}
}
