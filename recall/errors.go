package recall

import "errors"

var (
	// ErrExtractorRequired is returned when a vehicle extractor is not provided.
	ErrExtractorRequired = errors.New("vehicle extractor required")

	// ErrRegistryRequired is returned when a registry client is not provided.
	ErrRegistryRequired = errors.New("registry client required")
)
