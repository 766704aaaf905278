// Package lock serializes mutations of a single reservation.
package lock

import "errors"

var ErrNotHeld = errors.New("lock is not held with this token")
