package player

import "errors"

var (
	// ErrInvalidRecord is returned when a field constraint is violated on create or update.
	ErrInvalidRecord = errors.New("invalid player record")
	// ErrNotFound is returned when no player exists for the referenced identifier.
	ErrNotFound = errors.New("player not found")
	// ErrInvalidIdentifier is returned for non-positive or malformed identifiers.
	ErrInvalidIdentifier = errors.New("invalid player identifier")
)

// ErrorCode names the kind of err for status events.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRecord):
		return "INVALID_RECORD"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidIdentifier):
		return "INVALID_IDENTIFIER"
	default:
		return "UNKNOWN"
	}
}
