package services

import (
	"errors"
	"fmt"

	"scenic-server/api"
)

// RouteNotFoundError means the provider answered but could not build a route.
type RouteNotFoundError struct {
	Status string
}

func (e *RouteNotFoundError) Error() string {
	return "Could not find route: " + e.Status
}

// ProviderUnavailableError wraps transport level failures talking to the provider.
type ProviderUnavailableError struct {
	Op  string
	Err error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

// isHTTPStatusFailure reports whether err came from a non 2xx provider answer
// rather than a network level failure.
func isHTTPStatusFailure(err error) bool {
	var statusErr *api.StatusError
	return errors.As(err, &statusErr)
}
