// Package clock stamps sessions and decides when they lapse.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/msh-chargen/internal/pkg/clock Clock

// Precision is the resolution of session timestamps. It matches the
// millisecond TTLs Redis keeps, so a stamp survives a JSON round trip
// unchanged.
const Precision = time.Millisecond

// Clock is the time source for session bookkeeping
type Clock interface {
	Now() time.Time
}

// UTC reads the wall clock in UTC at Precision
type UTC struct{}

// Now returns the current time with the monotonic reading stripped
func (UTC) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}

// New returns the wall clock
func New() Clock {
	return UTC{}
}

// Expired reports whether deadline has been reached on c
func Expired(c Clock, deadline time.Time) bool {
	return !c.Now().Before(deadline)
}
