package screening

import (
	"strings"
	"time"
)

// Criteria narrows a screening collection. Zero values mean "match all" for
// their field, so an empty Criteria passes everything through.
type Criteria struct {
	CompanyID  int64
	Status     Status
	Type       Type
	DateStart  time.Time
	DateEnd    time.Time
	SearchText string
}

// FilterScreenings returns the records matching every set criterion, in their
// original order. The input is never mutated.
func FilterScreenings(records []Screening, criteria Criteria) []Screening {
	out := make([]Screening, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(criteria.SearchText))
	for _, record := range records {
		if criteria.CompanyID != 0 && record.CompanyID != criteria.CompanyID {
			continue
		}
		if criteria.Status != "" && record.Status != criteria.Status {
			continue
		}
		if criteria.Type != "" && record.Type != criteria.Type {
			continue
		}
		if !criteria.DateStart.IsZero() && record.Date.Before(criteria.DateStart) {
			continue
		}
		if !criteria.DateEnd.IsZero() && record.Date.After(criteria.DateEnd) {
			continue
		}
		if search != "" && !matchesSearch(record, search) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesSearch(record Screening, lowered string) bool {
	for _, field := range []string{record.CompanyName, record.ParticipantName, record.Notes} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}
