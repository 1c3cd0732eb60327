package report

import (
	"context"
	"time"

	"osgb/internal/domain/document"
	"osgb/internal/domain/screening"
)

type Service struct {
	screenings *screening.Service
	documents  *document.Service
}

func NewService(screenings *screening.Service, documents *document.Service) *Service {
	return &Service{screenings: screenings, documents: documents}
}

const topCompanyLimit = 5

// Dashboard assembles the landing-page figures. Everything is recomputed
// from source rows so the numbers always agree with the underlying lists.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	summary, err := s.screenings.Stats(ctx, screening.Criteria{})
	if err != nil {
		return Dashboard{}, err
	}
	monthly, err := s.screenings.Trend(ctx, screening.ThisMonth(now), screening.LastMonth(now))
	if err != nil {
		return Dashboard{}, err
	}
	weekly, err := s.screenings.Trend(ctx, screening.ThisWeek(now), screening.LastWeek(now))
	if err != nil {
		return Dashboard{}, err
	}
	docs, err := s.documents.Stats(ctx, document.Criteria{}, now)
	if err != nil {
		return Dashboard{}, err
	}
	upcoming, err := s.upcomingCount(ctx, now)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Screenings:    summary,
		MonthlyTrend:  monthly,
		WeeklyTrend:   weekly,
		Documents:     docs,
		TopCompanies:  screening.TopCompanies(summary, topCompanyLimit),
		UpcomingCount: upcoming,
	}, nil
}

func (s *Service) CompanyReport(ctx context.Context, companyID int64, now time.Time) (CompanyReport, error) {
	summary, err := s.screenings.Stats(ctx, screening.Criteria{CompanyID: companyID})
	if err != nil {
		return CompanyReport{}, err
	}
	docs, err := s.documents.Stats(ctx, document.Criteria{CompanyID: companyID}, now)
	if err != nil {
		return CompanyReport{}, err
	}
	upcoming, err := s.upcoming(ctx, companyID, now)
	if err != nil {
		return CompanyReport{}, err
	}
	return CompanyReport{
		CompanyID:  companyID,
		Screenings: summary,
		Documents:  docs,
		Upcoming:   upcoming,
	}, nil
}

func (s *Service) upcoming(ctx context.Context, companyID int64, now time.Time) ([]screening.Screening, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	records, err := s.screenings.Calendar(ctx, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	criteria := screening.Criteria{CompanyID: companyID, Status: screening.StatusScheduled}
	return screening.FilterScreenings(records, criteria), nil
}

func (s *Service) upcomingCount(ctx context.Context, now time.Time) (int, error) {
	records, err := s.upcoming(ctx, 0, now)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
