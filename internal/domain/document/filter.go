package document

import (
	"strings"
	"time"
)

// Criteria narrows a document collection; zero values pass through, mirroring
// the screening filter.
type Criteria struct {
	CompanyID  int64
	Status     Status
	Category   Category
	DateStart  time.Time
	DateEnd    time.Time
	SearchText string
}

// FilterDocuments returns the matching records in original order without
// mutating the input.
func FilterDocuments(records []Document, criteria Criteria) []Document {
	out := make([]Document, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(criteria.SearchText))
	for _, record := range records {
		if criteria.CompanyID != 0 && (record.CompanyID == nil || *record.CompanyID != criteria.CompanyID) {
			continue
		}
		if criteria.Status != "" && record.Status != criteria.Status {
			continue
		}
		if criteria.Category != "" && record.Category != criteria.Category {
			continue
		}
		if !criteria.DateStart.IsZero() && record.UploadDate.Before(criteria.DateStart) {
			continue
		}
		if !criteria.DateEnd.IsZero() && record.UploadDate.After(criteria.DateEnd) {
			continue
		}
		if search != "" && !matchesSearch(record, search) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesSearch(record Document, lowered string) bool {
	for _, field := range []string{record.Title, record.FileName, record.CompanyName} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

type Summary struct {
	Total         int              `json:"total"`
	ByCategory    map[Category]int `json:"byCategory"`
	ByStatus      map[Status]int   `json:"byStatus"`
	ExpiredCount  int              `json:"expiredCount"`
	ExpiringCount int              `json:"expiringCount"`
	TotalBytes    int64            `json:"totalBytes"`
}

// AggregateDocuments reduces a collection in one pass; every category and
// status bucket is present even at zero. Expired/expiring counts come from
// the derived classifier, not the persisted status.
func AggregateDocuments(records []Document, now time.Time) Summary {
	summary := Summary{
		ByCategory: make(map[Category]int, len(AllCategories)),
		ByStatus:   make(map[Status]int, len(AllStatuses)),
	}
	for _, category := range AllCategories {
		summary.ByCategory[category] = 0
	}
	for _, status := range AllStatuses {
		summary.ByStatus[status] = 0
	}

	for _, record := range records {
		summary.Total++
		summary.ByCategory[record.Category]++
		summary.ByStatus[record.Status]++
		summary.TotalBytes += record.FileSize

		info := ClassifyExpiry(record.ExpiryDate, now)
		if info.IsExpired {
			summary.ExpiredCount++
		}
		if info.IsExpiringSoon {
			summary.ExpiringCount++
		}
	}
	return summary
}
