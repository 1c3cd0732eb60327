package screening

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateScreeningsEmpty(t *testing.T) {
	summary := AggregateScreenings(nil)

	if summary.Total != 0 {
		t.Fatalf("expected total 0, got %d", summary.Total)
	}
	if summary.CompletionRate != 0 || summary.CancellationRate != 0 || summary.AvgParticipants != 0 {
		t.Fatalf("expected zero rates on empty input, got %+v", summary)
	}
	for _, status := range AllStatuses {
		count, ok := summary.ByStatus[status]
		if !ok {
			t.Fatalf("expected bucket for status %q", status)
		}
		if count != 0 {
			t.Fatalf("expected zero count for %q, got %d", status, count)
		}
	}
	for _, screeningType := range AllTypes {
		if _, ok := summary.ByType[screeningType]; !ok {
			t.Fatalf("expected bucket for type %q", screeningType)
		}
	}
}

func TestAggregateScreeningsStatusMix(t *testing.T) {
	records := []Screening{
		{ID: 1, CompanyID: 1, Date: day(2024, 1, 10), Status: StatusScheduled, Type: TypePeriodic, EmployeeCount: 10},
		{ID: 2, CompanyID: 1, Date: day(2024, 1, 10), Status: StatusCompleted, Type: TypePeriodic, EmployeeCount: 20},
		{ID: 3, CompanyID: 2, Date: day(2024, 1, 10), Status: StatusCompleted, Type: TypeInitial, EmployeeCount: 30},
		{ID: 4, CompanyID: 2, Date: day(2024, 1, 10), Status: StatusCancelled, Type: TypeSpecial, EmployeeCount: 40},
	}

	summary := AggregateScreenings(records)

	if summary.Total != 4 {
		t.Fatalf("expected total 4, got %d", summary.Total)
	}
	wantStatus := map[Status]int{StatusScheduled: 1, StatusCompleted: 2, StatusCancelled: 1, StatusNoShow: 0}
	for status, want := range wantStatus {
		if summary.ByStatus[status] != want {
			t.Fatalf("status %q: expected %d, got %d", status, want, summary.ByStatus[status])
		}
	}
	if summary.CompletionRate != 50 {
		t.Fatalf("expected completion rate 50, got %d", summary.CompletionRate)
	}
	if summary.CancellationRate != 25 {
		t.Fatalf("expected cancellation rate 25, got %d", summary.CancellationRate)
	}
	if summary.TotalParticipants != 100 {
		t.Fatalf("expected 100 participants, got %d", summary.TotalParticipants)
	}
	if summary.AvgParticipants != 25 {
		t.Fatalf("expected avg 25 participants, got %d", summary.AvgParticipants)
	}
}

func TestAggregateScreeningsNoShowCountsAsCancellation(t *testing.T) {
	records := []Screening{
		{ID: 1, Status: StatusNoShow, Type: TypePeriodic},
		{ID: 2, Status: StatusCompleted, Type: TypePeriodic},
	}

	summary := AggregateScreenings(records)
	if summary.CancellationRate != 50 {
		t.Fatalf("expected cancellation rate 50, got %d", summary.CancellationRate)
	}
}

func TestTopCompaniesOrderAndTruncation(t *testing.T) {
	records := []Screening{
		{ID: 1, CompanyID: 10, CompanyName: "Acme", Status: StatusScheduled, Type: TypePeriodic},
		{ID: 2, CompanyID: 20, CompanyName: "Borda", Status: StatusScheduled, Type: TypePeriodic},
		{ID: 3, CompanyID: 20, CompanyName: "Borda", Status: StatusScheduled, Type: TypePeriodic},
		{ID: 4, CompanyID: 30, CompanyName: "Cetin", Status: StatusScheduled, Type: TypePeriodic},
		{ID: 5, CompanyID: 30, CompanyName: "Cetin", Status: StatusScheduled, Type: TypePeriodic},
	}

	summary := AggregateScreenings(records)
	top := TopCompanies(summary, 2)

	if len(top) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(top))
	}
	// Borda and Cetin tie at 2; Borda was encountered first.
	if top[0].CompanyID != 20 || top[1].CompanyID != 30 {
		t.Fatalf("expected stable tie order [20, 30], got [%d, %d]", top[0].CompanyID, top[1].CompanyID)
	}

	all := TopCompanies(summary, 10)
	if len(all) != 3 {
		t.Fatalf("expected 3 companies when n exceeds distinct count, got %d", len(all))
	}
}

func TestAggregateScreeningsDoesNotMutateInput(t *testing.T) {
	records := []Screening{{ID: 1, CompanyID: 1, Status: StatusScheduled, Type: TypePeriodic, EmployeeCount: 5}}
	before := records[0]
	_ = AggregateScreenings(records)
	if records[0] != before {
		t.Fatal("input collection mutated")
	}
}
