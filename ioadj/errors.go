package ioadj

import "errors"

// Sentinel errors for this package's parsers. Callers branch with
// errors.Is; the command-line front-end turns any of these into exit code 1
// and a message on the error stream.
var (
	// ErrMalformedHeader indicates the "# nodes N" line is missing or
	// does not parse.
	ErrMalformedHeader = errors.New("ioadj: malformed header")

	// ErrVertexCountMismatch indicates an adjacency-list line's leading
	// vertex id does not match the line number it occupies.
	ErrVertexCountMismatch = errors.New("ioadj: vertex count mismatch")

	// ErrParseToken indicates a token expected to be a decimal integer
	// failed to parse.
	ErrParseToken = errors.New("ioadj: integer parse failure")

	// ErrTruncated indicates the input ended before the declared number
	// of vertices were read, or an ordering line does not hold exactly the
	// expected number of entries.
	ErrTruncated = errors.New("ioadj: truncated input")
)
