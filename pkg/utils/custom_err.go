package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	// Pipeline failures. Catalog fetch errors are absorbed per
	// (city, category) pair and never reach a handler; the rest abort the
	// current attempt and map to distinct HTTP statuses in api_wrap.go.
	ErrCatalogFetch            = errors.New("place search failed")
	ErrNoCandidates            = errors.New("no candidate places found")
	ErrGenerationFormat        = errors.New("generator returned malformed plan")
	ErrGenerationUnavailable   = errors.New("generation service unavailable")
	ErrPersistenceWrite        = errors.New("itinerary persistence failed")
	ErrInvalidPreferenceVector = errors.New("invalid preference vector")

	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrProfileNotFound   = errors.New("preference profile not found")
	ErrNotOwner          = errors.New("itinerary does not belong to user")
)
