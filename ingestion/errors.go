package ingestion

import "errors"

var (
	// ErrSourceUnavailable is returned when a source cannot be loaded or parsed.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedCSV is returned when CSV content cannot be turned into a table.
	ErrMalformedCSV = errors.New("malformed csv")

	// ErrInvalidMatchLogic is returned for keyword match logic other than "and" or "or".
	ErrInvalidMatchLogic = errors.New("invalid match logic")

	// ErrDirectoryRequired is returned when a merger is created without a data directory.
	ErrDirectoryRequired = errors.New("data directory required")
)
