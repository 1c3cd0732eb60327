package screening

import (
	"math"
	"sort"
)

type CompanyCount struct {
	CompanyID   int64  `json:"companyId"`
	CompanyName string `json:"companyName"`
	Count       int    `json:"count"`
}

type Summary struct {
	Total             int            `json:"total"`
	ByStatus          map[Status]int `json:"byStatus"`
	ByType            map[Type]int   `json:"byType"`
	ByCompany         []CompanyCount `json:"byCompany"`
	TotalParticipants int            `json:"totalParticipants"`
	AvgParticipants   int            `json:"avgParticipants"`
	CompletionRate    int            `json:"completionRate"`
	CancellationRate  int            `json:"cancellationRate"`
}

// AggregateScreenings reduces a collection in a single pass. Every status and
// type bucket is present in the result, zero included, and all rates carry a
// zero-guard: an empty collection yields all-zero output, never NaN.
func AggregateScreenings(records []Screening) Summary {
	summary := Summary{
		ByStatus: make(map[Status]int, len(AllStatuses)),
		ByType:   make(map[Type]int, len(AllTypes)),
	}
	for _, status := range AllStatuses {
		summary.ByStatus[status] = 0
	}
	for _, screeningType := range AllTypes {
		summary.ByType[screeningType] = 0
	}

	companyIndex := make(map[int64]int)
	for _, record := range records {
		summary.Total++
		summary.ByStatus[record.Status]++
		summary.ByType[record.Type]++
		summary.TotalParticipants += record.EmployeeCount

		if idx, seen := companyIndex[record.CompanyID]; seen {
			summary.ByCompany[idx].Count++
		} else {
			companyIndex[record.CompanyID] = len(summary.ByCompany)
			summary.ByCompany = append(summary.ByCompany, CompanyCount{
				CompanyID:   record.CompanyID,
				CompanyName: record.CompanyName,
				Count:       1,
			})
		}
	}

	summary.CompletionRate = percentage(summary.ByStatus[StatusCompleted], summary.Total)
	summary.CancellationRate = percentage(summary.ByStatus[StatusCancelled]+summary.ByStatus[StatusNoShow], summary.Total)
	summary.AvgParticipants = ratio(summary.TotalParticipants, summary.Total)
	return summary
}

// TopCompanies returns the n busiest companies, descending by count. Ties keep
// encounter order, which ByCompany already carries.
func TopCompanies(summary Summary, n int) []CompanyCount {
	out := make([]CompanyCount, len(summary.ByCompany))
	copy(out, summary.ByCompany)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

func ratio(sum, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(total)))
}
