package store

import (
	"errors"
	"fmt"
)

// ErrRequestFailed marks any transport or server failure: network errors,
// non-2xx statuses, undecodable response bodies. The UI layer treats all of
// these as one opaque "fetch failed" condition with a manual retry action,
// so the client deliberately does not split the taxonomy any finer.
var ErrRequestFailed = errors.New("record store request failed")

// requestError wraps a failure with the method and URL that produced it.
func requestError(method, url string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, url, err)
}

// statusError reports a non-success HTTP status.
func statusError(method, url string, status int) error {
	return fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, url, status)
}
