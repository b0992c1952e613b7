package planner

import (
	"errors"
	"fmt"
)

// SkipReason identifies why a file is benignly left alone.
type SkipReason int

const (
	// SkipDirectory: the path is a directory.
	SkipDirectory SkipReason = iota

	// SkipExtension: the extension is missing or not a supported image format.
	SkipExtension

	// SkipWellNamed: the file is already named exactly as its computed target.
	SkipWellNamed
)

func (r SkipReason) String() string {
	switch r {
	case SkipDirectory:
		return "is a directory"
	case SkipExtension:
		return "not an EXIF file"
	case SkipWellNamed:
		return "does not need renaming"
	default:
		return fmt.Sprintf("unknown skip reason %d", int(r))
	}
}

// SkipError is a benign per-file outcome. It never raises the process exit
// status and never aborts the batch.
type SkipError struct {
	Reason SkipReason
}

func (e *SkipError) Error() string {
	return e.Reason.String()
}

// ImageError is a real per-file failure: the capture date could not be read
// or could not be resolved in the configured timezone. It raises the exit
// status but does not abort classification of the remaining files.
type ImageError struct {
	Err error
}

func (e *ImageError) Error() string {
	return e.Err.Error()
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// IsSkip reports whether err is a benign skip.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}
