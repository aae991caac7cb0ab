package weatherunion

import (
	"errors"
	"fmt"
)

// Every non-2xx status the provider documents maps to exactly one of these, so
// callers can branch with errors.Is / errors.As instead of sniffing strings.
var (
	// ErrRetrievingData is returned when the provider answers 500.
	ErrRetrievingData = errors.New("weatherunion: provider failed to retrieve data")

	// ErrNotSupported is returned when the provider answers 400: the locality id
	// or coordinates are outside the coverage area.
	ErrNotSupported = errors.New("weatherunion: locality or coordinates not supported")

	// ErrKeyLimitExhausted is returned when the provider answers 429.
	ErrKeyLimitExhausted = errors.New("weatherunion: api key limit exhausted")

	// ErrCouldNotAuthenticate is returned when the provider answers 403.
	ErrCouldNotAuthenticate = errors.New("weatherunion: could not authenticate")

	// ErrInvalidResponse is returned when a 200 body cannot be decoded.
	ErrInvalidResponse = errors.New("weatherunion: invalid response body")

	// ErrEmptyLocalityID is returned before any request is made.
	ErrEmptyLocalityID = errors.New("weatherunion: empty locality id")

	// ErrUnknownLocality is returned by LocalityFromID for ids absent from the
	// bundled table.
	ErrUnknownLocality = errors.New("weatherunion: unknown locality id")
)

// UnavailableError is returned on a 200 response whose body carries a non-empty
// message instead of readings, which the provider uses for stations that are
// temporarily down.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("weatherunion: temporarily unavailable: %s", e.Message)
}

// UnexpectedStatusError is returned for statuses outside the documented contract.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("weatherunion: unexpected status %d", e.StatusCode)
}
