package analysis

import "errors"

var (
	// ErrInvalidBlockSize is returned by NewAnalyzer for unsupported block sizes.
	ErrInvalidBlockSize = errors.New("analysis: invalid block size")

	// ErrLengthMismatch is returned when a buffer does not match the block size.
	ErrLengthMismatch = errors.New("analysis: length mismatch")
)
