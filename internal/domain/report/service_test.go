package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osgb/internal/domain/document"
	"osgb/internal/domain/screening"
)

type fakeScreeningStore struct {
	screening.StoreAPI
	records []screening.Screening
}

func (f *fakeScreeningStore) ListAll(ctx context.Context) ([]screening.Screening, error) {
	return f.records, nil
}

func (f *fakeScreeningStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]screening.Screening, error) {
	var out []screening.Screening
	for _, record := range f.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

type fakeDocumentStore struct {
	document.StoreAPI
	records []document.Document
}

func (f *fakeDocumentStore) ListAll(ctx context.Context) ([]document.Document, error) {
	return f.records, nil
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	screenings := &fakeScreeningStore{records: []screening.Screening{
		{ID: 1, CompanyID: 1, CompanyName: "Acme", Date: day(2024, 3, 14), Status: screening.StatusCompleted, Type: screening.TypePeriodic, EmployeeCount: 20},
		{ID: 2, CompanyID: 1, CompanyName: "Acme", Date: day(2024, 3, 20), Status: screening.StatusScheduled, Type: screening.TypePeriodic, EmployeeCount: 10},
		{ID: 3, CompanyID: 2, CompanyName: "Borealis", Date: day(2024, 2, 10), Status: screening.StatusCompleted, Type: screening.TypeInitial, EmployeeCount: 5},
	}}
	documents := &fakeDocumentStore{records: []document.Document{
		{ID: 1, Title: "Fire safety certificate", Category: document.CategoryCertificate, Status: document.StatusActive, ExpiryDate: &expiry},
		{ID: 2, Title: "Service contract", Category: document.CategoryContract, Status: document.StatusActive},
	}}

	svc := NewService(screening.NewService(screenings), document.NewService(documents, nil, ""))

	dashboard, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Screenings.Total)
	assert.Equal(t, 2, dashboard.MonthlyTrend.CurrentCount)
	assert.Equal(t, 1, dashboard.MonthlyTrend.PreviousCount)
	assert.Equal(t, 100, dashboard.MonthlyTrend.ChangePercent)
	assert.Equal(t, 1, dashboard.Documents.ExpiringCount)
	assert.Equal(t, 0, dashboard.Documents.ExpiredCount)
	require.NotEmpty(t, dashboard.TopCompanies)
	assert.Equal(t, "Acme", dashboard.TopCompanies[0].CompanyName)
	assert.Equal(t, 1, dashboard.UpcomingCount)
}

func TestCompanyReport(t *testing.T) {
	now := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	companyID := int64(1)

	screenings := &fakeScreeningStore{records: []screening.Screening{
		{ID: 1, CompanyID: 1, CompanyName: "Acme", Date: day(2024, 3, 14), Status: screening.StatusCompleted, Type: screening.TypePeriodic},
		{ID: 2, CompanyID: 1, CompanyName: "Acme", Date: day(2024, 3, 20), Status: screening.StatusScheduled, Type: screening.TypePeriodic},
		{ID: 3, CompanyID: 2, CompanyName: "Borealis", Date: day(2024, 3, 21), Status: screening.StatusScheduled, Type: screening.TypeInitial},
	}}
	documents := &fakeDocumentStore{records: []document.Document{
		{ID: 1, Title: "Contract", Category: document.CategoryContract, Status: document.StatusActive, CompanyID: &companyID},
		{ID: 2, Title: "Other company doc", Category: document.CategoryOther, Status: document.StatusActive},
	}}

	svc := NewService(screening.NewService(screenings), document.NewService(documents, nil, ""))

	rep, err := svc.CompanyReport(context.Background(), companyID, now)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Screenings.Total)
	assert.Equal(t, 1, rep.Documents.Total)
	require.Len(t, rep.Upcoming, 1)
	assert.Equal(t, int64(2), rep.Upcoming[0].ID)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
