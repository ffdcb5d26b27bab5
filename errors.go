/*
Copyright © 2026 the geofeat authors.
This file is part of geofeat.

geofeat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geofeat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geofeat.  If not, see <http://www.gnu.org/licenses/>.
*/

package geofeat

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this module wrap one of them.
var (
	// ErrMalformed is returned for input that violates a format grammar.
	ErrMalformed = errors.New("geofeat: malformed input")
	// ErrUnsupportedFormat is returned for a format that is known but has
	// no adapter, or for input whose format cannot be detected.
	ErrUnsupportedFormat = errors.New("geofeat: unsupported format")
	// ErrStructure is returned when a geometry cannot be built from the
	// supplied components.
	ErrStructure = errors.New("geofeat: invalid geometry structure")
	// ErrUnavailable is returned by operations that need a native engine
	// when none is configured.
	ErrUnavailable = errors.New("geofeat: operation requires a geometry engine")
)

// FormatError describes malformed input to a codec. errors.Is reports
// true for ErrMalformed.
type FormatError struct {
	Format string // codec name, e.g. "wkb"
	Reason string
	Err    error // underlying cause, may be nil
}

// Malformed returns a *FormatError for format with a formatted reason.
func Malformed(format string, cause error, reason string, a ...interface{}) error {
	return &FormatError{Format: format, Reason: fmt.Sprintf(reason, a...), Err: cause}
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }

// Is matches ErrMalformed.
func (e *FormatError) Is(target error) bool { return target == ErrMalformed }

// structureError wraps ErrStructure with context.
func structureError(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, a...))
}
