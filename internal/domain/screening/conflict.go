package screening

import "time"

// DetectConflicts returns every pool record whose time interval overlaps the
// target's on the same calendar date. The target itself and cancelled
// screenings never conflict. Intervals are half-open, so back-to-back
// appointments (target end == other start) do not collide, and the test is
// symmetric between target and pool member.
func DetectConflicts(target Screening, pool []Screening) []Screening {
	conflicts := []Screening{}
	for _, other := range pool {
		if other.ID == target.ID {
			continue
		}
		if !sameDay(other.Date, target.Date) {
			continue
		}
		if other.Status == StatusCancelled {
			continue
		}
		if overlaps(target.TimeStart, target.TimeEnd, other.TimeStart, other.TimeEnd) {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}

// overlaps works on "HH:MM" strings, which order lexicographically.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
