// Package errors holds sentinel errors shared between the repository
// and service layers.
package errors

import "errors"

// ErrOpenAttendanceExists is returned by the transactional check-in when
// the worker already has an open attendance record for the shift.
var ErrOpenAttendanceExists = errors.New("an open attendance record already exists for this shift")

// ErrDuplicateEmail is returned when an insert or update violates the
// unique constraint on users.email.
var ErrDuplicateEmail = errors.New("email already exists")
