// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal hides storage and infrastructure failures from clients.
// Repos log the underlying cause before returning it.
var ErrInternal = errors.New("internal")
