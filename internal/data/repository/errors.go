// Sentinel errors shared by the repositories and the services built
// on top of them. Handlers translate these into HTTP status codes
// with errors.Is instead of matching on message text.
package repository

import "errors"

// ErrNotFound is returned when the target record does not exist.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidReference is returned when a referenced record (the movie
// of a showtime, the showtime of a booking) does not resolve.
// Handlers translate it into a 400 response.
var ErrInvalidReference = errors.New("invalid reference")

// ErrSchedulingConflict is returned when a showtime would overlap an
// existing showtime in the same theater. Handlers translate it into
// a 409 response.
var ErrSchedulingConflict = errors.New("scheduling conflict")

// ErrSeatTaken is returned when a booking would claim a seat that is
// already booked on the same showtime. Handlers translate it into a
// 409 response.
var ErrSeatTaken = errors.New("seat already booked")

// ErrValidation is returned when request data fails shape validation
// before reaching the store. Handlers translate it into a 400
// response.
var ErrValidation = errors.New("validation failed")
