package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for formats other than yaml or json.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrFileNotFound is returned when a config file does not exist or
	// cannot be read.
	ErrFileNotFound = errors.New("configuration file not found")
)

// ParseError reports malformed content for the declared format. It wraps
// the underlying parser diagnostic.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
