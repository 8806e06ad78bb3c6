// Package availability decides whether a requested booking time is legal.
//
// Everything here is a pure function over a snapshot of slots and bookings passed by the
// caller: no I/O, no clock. Intervals are half-open, so [10:00, 11:00) and [11:00, 12:00)
// do not overlap and back-to-back bookings are legal.
package availability

import "github.com/m04kA/SMC-FacilityBooking/pkg/types"

// Window is a wall-clock interval [Start, End) on some date
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// ToMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// Missing or unparseable components count as 0; it never fails.
func ToMinutes(t string) int {
	return types.TimeString(t).Minutes()
}

// Overlaps reports whether [startA, endA) and [startB, endB) intersect.
// Intervals sharing only a boundary point do not overlap.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// Contains reports whether [innerStart, innerEnd) lies inside [outerStart, outerEnd)
func Contains(outerStart, outerEnd, innerStart, innerEnd int) bool {
	return outerStart <= innerStart && outerEnd >= innerEnd
}

func overlapsTimes(startA, endA, startB, endB types.TimeString) bool {
	return Overlaps(startA.Minutes(), endA.Minutes(), startB.Minutes(), endB.Minutes())
}
