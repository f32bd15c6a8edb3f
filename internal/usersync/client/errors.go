package client

import (
	"errors"
	"fmt"
	"net/http"
)

const maxErrorBody = 1024

// TransportError is a failure to obtain any response from the remote API.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error calling %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-2xx response from the remote API.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed with status: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed with status: %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a RemoteError carrying 404.
func IsNotFound(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound
}

func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
