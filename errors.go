package pathgeom

import (
	"errors"
	"fmt"
)

// ErrMissingMoveTo reports a path that does not start with a MoveTo.
var ErrMissingMoveTo = errors.New("missing initial moveto in path definition")

// errRemoveUnsupported is returned by Remove on every path iterator.
var errRemoveUnsupported = fmt.Errorf("path iterator: remove: %w", errors.ErrUnsupported)

// must panics on err. Paths maintain the MoveTo invariant themselves, so the
// crossing functions cannot fail when fed a path's own iterator.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
