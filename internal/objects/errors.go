package objects

import (
	"errors"
	"fmt"
	"strings"
)

// Error values returned by the codec and the store. Each failure mode is a
// distinct value so callers (the CLI in particular) can match with errors.Is
// and emit a specific diagnostic instead of a generic one.
var (
	// ErrUnknownType reports an object type tag outside blob/tree/commit.
	ErrUnknownType = errors.New("unknown object type")

	// ErrMalformedHeader reports a stored object whose header is missing
	// the space or NUL delimiter.
	ErrMalformedHeader = errors.New("malformed object header")

	// ErrSizeMismatch reports a header size that disagrees with the actual
	// payload length.
	ErrSizeMismatch = errors.New("object size mismatch")

	// ErrCorruptObject reports stored bytes that fail zlib decompression.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrNotFound reports a reference that matches no stored object.
	ErrNotFound = errors.New("object not found")

	// ErrInvalidReference reports a reference that is too short or not hex.
	ErrInvalidReference = errors.New("invalid object reference")

	// ErrTypeMismatch reports an exact-type inspection against an object of
	// a different type.
	ErrTypeMismatch = errors.New("object type mismatch")
)

// AmbiguousPrefixError reports a prefix matching more than one stored object.
// Candidates holds every matching full hash so the caller can disambiguate.
type AmbiguousPrefixError struct {
	Prefix     string
	Candidates []string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("ambiguous prefix %s matches %d objects: %s",
		e.Prefix, len(e.Candidates), strings.Join(e.Candidates, ", "))
}
