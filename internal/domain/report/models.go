package report

import (
	"osgb/internal/domain/document"
	"osgb/internal/domain/screening"
)

// Dashboard is the landing-page payload: current screening aggregate, the
// month-over-month movement, document expiry pressure and the busiest
// companies.
type Dashboard struct {
	Screenings    screening.Summary        `json:"screenings"`
	MonthlyTrend  screening.Trend          `json:"monthlyTrend"`
	WeeklyTrend   screening.Trend          `json:"weeklyTrend"`
	Documents     document.Summary         `json:"documents"`
	TopCompanies  []screening.CompanyCount `json:"topCompanies"`
	UpcomingCount int                      `json:"upcomingCount"`
}

// CompanyReport narrows the same figures to one company.
type CompanyReport struct {
	CompanyID  int64                 `json:"companyId"`
	Screenings screening.Summary     `json:"screenings"`
	Documents  document.Summary      `json:"documents"`
	Upcoming   []screening.Screening `json:"upcoming"`
}
