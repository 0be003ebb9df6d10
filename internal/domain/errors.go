package domain

import "errors"

var (
	// ErrInvalidVideoID is returned when a candidate identifier is not an 11-character video ID
	ErrInvalidVideoID = errors.New("invalid video id")

	// ErrInvalidPublishedAt is returned when published_at cannot be parsed
	ErrInvalidPublishedAt = errors.New("invalid published_at")

	// ErrCalendarKeyNotFound is returned when no calendar entry matches a (year, month, day)
	ErrCalendarKeyNotFound = errors.New("calendar key not found")

	// ErrUndefinedFeature is returned when a feature cannot be computed from a row's inputs
	ErrUndefinedFeature = errors.New("undefined feature input")

	// ErrVideoNotFound is returned when the metadata collaborator has no record for a video
	ErrVideoNotFound = errors.New("video not found")

	// ErrUnavailable is returned when the store or a collaborator cannot be reached
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnknownModelCode is returned when a model emits a code outside its mapping table
	ErrUnknownModelCode = errors.New("unknown model output code")

	// ErrRunInProgress is returned when another ingestion run still holds the run lease
	ErrRunInProgress = errors.New("ingestion run in progress")
)

// ErrorKind is the coarse classification used to decide whether an error aborts a step
type ErrorKind string

const (
	// ErrorKindConnectivity aborts the current step
	ErrorKindConnectivity ErrorKind = "connectivity"
	// ErrorKindValidation skips the single item
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindNotFound is treated as "no data"
	ErrorKindNotFound ErrorKind = "not_found"
)

// Classify maps an error to its ErrorKind. Unrecognized errors are connectivity errors.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidVideoID),
		errors.Is(err, ErrInvalidPublishedAt),
		errors.Is(err, ErrCalendarKeyNotFound),
		errors.Is(err, ErrUndefinedFeature):
		return ErrorKindValidation
	case errors.Is(err, ErrVideoNotFound):
		return ErrorKindNotFound
	default:
		return ErrorKindConnectivity
	}
}
