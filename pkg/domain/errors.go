package domain

import "errors"

// ErrBadPattern is returned when the search text does not compile as an
// expression (raw-regex semantics are the default).
var ErrBadPattern = errors.New("invalid search pattern")

// ErrBlockNotFound is returned when a mutation targets a block ID that is
// not in the tree.
var ErrBlockNotFound = errors.New("block not found")

// ErrDocumentNotFound is returned when a store has no document under the
// requested key.
var ErrDocumentNotFound = errors.New("document not found")
