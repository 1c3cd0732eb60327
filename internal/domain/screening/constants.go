package screening

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// AllStatuses fixes the histogram bucket order; every aggregate reports every
// bucket, zero counts included.
var AllStatuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type Type string

const (
	TypePeriodic Type = "periodic"
	TypeInitial  Type = "initial"
	TypeSpecial  Type = "special"
)

var AllTypes = []Type{TypePeriodic, TypeInitial, TypeSpecial}

func (t Type) Valid() bool {
	switch t {
	case TypePeriodic, TypeInitial, TypeSpecial:
		return true
	}
	return false
}

// ValidTransition reports whether a status change is allowed. Screenings are
// never hard-deleted; scheduled is the only state that moves.
func ValidTransition(from, to Status) bool {
	if from != StatusScheduled {
		return false
	}
	switch to {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
