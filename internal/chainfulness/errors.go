package chainfulness

import (
	"errors"
	"fmt"
)

// Parse and validation failures. These are raised before any network call.
var (
	ErrMalformedURI            = errors.New("malformed URI: expected resource://wallet~endpoint")
	ErrUnknownResourceType     = errors.New("unknown resource type")
	ErrMalformedWalletEndpoint = errors.New("malformed wallet~endpoint segment")
	ErrUnknownEndpoint         = errors.New("unknown endpoint")
	ErrUnsupportedEndpoint     = errors.New("unsupported endpoint: use 'analyze' for combined data")
)

// Upstream failures. All are terminal for the current request; nothing is
// retried internally.
var (
	ErrUpstreamTimeout = errors.New("upstream request timed out")
	ErrUpstreamRequest = errors.New("upstream request failed")
	ErrUpstreamDecode  = errors.New("upstream response is not valid JSON")
)

// HTTPError is a non-2xx response from the upstream API.
type HTTPError struct {
	Status int
	Body   string // excerpt, capped at bodyExcerptLimit
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream API error (%d)", e.Status)
	}
	return fmt.Sprintf("upstream API error (%d): %s", e.Status, e.Body)
}
