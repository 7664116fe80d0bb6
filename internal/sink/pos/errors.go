package pos

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadEndpoint rejects configs whose endpoint carries no HTTP scheme.
// No network call is attempted for such configs.
var ErrBadEndpoint = errors.New("pos endpoint must start with http:// or https://")

// TimeoutError reports that a POS call exceeded its configured deadline.
type TimeoutError struct {
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("pos request timed out after %s", e.Limit)
}

// ConnectionError wraps transport-level failures (DNS, TCP, TLS).
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("pos connection failed: %v", e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response from the POS endpoint, so
// operators can tell a business rejection from a network failure.
type StatusError struct {
	Code int
	Body string
}

func (e StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pos rejected order with status %d", e.Code)
	}
	return fmt.Sprintf("pos rejected order with status %d: %s", e.Code, e.Body)
}
