package reader

import "errors"

// ErrInputNotFound is returned when a board file cannot be located or opened.
var ErrInputNotFound = errors.New("reader: input file not found")

// ErrMalformedInput covers every structural problem in a board file once it
// has been found and opened: a missing section, an unparsable token, a
// mismatched color symbol.
var ErrMalformedInput = errors.New("reader: malformed board file")
