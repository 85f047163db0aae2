// Package chainfulness talks to the Chainfulness wallet-analytics API and
// composes its two-call find/total responses into single analyze payloads.
package chainfulness

import "strings"

// ResourceType is one of the three analytic domains the API serves.
type ResourceType string

const (
	ResourceAssets       ResourceType = "assets"
	ResourceTransactions ResourceType = "transactions"
	ResourceInvestments  ResourceType = "investments"
)

// ResourceTypes lists the closed set in catalog order.
func ResourceTypes() []ResourceType {
	return []ResourceType{ResourceAssets, ResourceTransactions, ResourceInvestments}
}

// Valid reports whether rt is a member of the closed set.
func (rt ResourceType) Valid() bool {
	switch rt {
	case ResourceAssets, ResourceTransactions, ResourceInvestments:
		return true
	}
	return false
}

// Endpoint is the caller-facing operation variant. The schema consolidated
// the old two-call find/total form into the single merged analyze form, so
// analyze is the only valid input; find and total survive only as upstream
// URL suffixes (see client.go).
type Endpoint string

const EndpointAnalyze Endpoint = "analyze"

// Valid reports whether e is an accepted caller-facing endpoint.
func (e Endpoint) Valid() bool {
	return e == EndpointAnalyze
}

// ParseURI decodes a resource identifier of the form
//
//	{resourceType}://{wallet}~{endpoint}
//
// into its components. It is a pure parse: no I/O, and every failure is
// reported before anything touches the network.
func ParseURI(uri string) (ResourceType, string, Endpoint, error) {
	head, rest, ok := strings.Cut(uri, "://")
	if !ok || strings.Contains(rest, "://") {
		return "", "", "", ErrMalformedURI
	}

	rt := ResourceType(head)
	if !rt.Valid() {
		return "", "", "", ErrUnknownResourceType
	}

	wallet, ep, ok := strings.Cut(rest, "~")
	if !ok || strings.Contains(ep, "~") {
		return "", "", "", ErrMalformedWalletEndpoint
	}

	endpoint := Endpoint(ep)
	if !endpoint.Valid() {
		return "", "", "", ErrUnknownEndpoint
	}

	return rt, wallet, endpoint, nil
}
