// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics; core sentinels
//     (core.ErrUnknownAirport, core.ErrInvalidRoute, ...) pass through wrapped.
//   • Context is attached with %w via wrapf, never baked into the sentinel.
//   • Constructors never panic; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadWeight indicates a cost-table cell that is neither an integer nor the
// "no route" marker. Typical origin: ParseWeight on free-form input.
var ErrBadWeight = errors.New("builder: malformed weight")

// ErrConflictingRoute indicates the same unordered pair was declared twice with
// different weights while WithStrictConflicts is active.
var ErrConflictingRoute = errors.New("builder: conflicting weights for route")

// ErrBadMatrix indicates a matrix whose row count or row lengths do not match
// its code list, or whose code list repeats a code.
var ErrBadMatrix = errors.New("builder: malformed matrix")

// wrapf wraps err with the constructor name and a formatted detail.
// The result reads "<method>: <detail>: <err>" and preserves errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
