package document

import (
	"testing"
	"time"
)

func TestClassifyExpiryNilDate(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	info := ClassifyExpiry(nil, now)

	if info.IsExpired || info.IsExpiringSoon {
		t.Fatalf("nil expiry date must classify as neither, got %+v", info)
	}
	if info.DaysUntilExpiry != nil {
		t.Fatalf("expected nil daysUntilExpiry, got %d", *info.DaysUntilExpiry)
	}
}

func TestClassifyExpiry(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		expiry       time.Time
		wantDays     int
		wantExpired  bool
		wantExpiring bool
	}{
		{"expires in 15 days", now.AddDate(0, 0, 15), 15, false, true},
		{"expired 5 days ago", now.AddDate(0, 0, -5), -5, true, false},
		{"expires at the 30 day boundary", now.AddDate(0, 0, 30), 30, false, true},
		{"expires in 31 days", now.AddDate(0, 0, 31), 31, false, false},
		{"expires tomorrow", now.AddDate(0, 0, 1), 1, false, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			expiry := tc.expiry
			info := ClassifyExpiry(&expiry, now)

			if info.DaysUntilExpiry == nil {
				t.Fatal("expected daysUntilExpiry to be set")
			}
			if *info.DaysUntilExpiry != tc.wantDays {
				t.Fatalf("expected %d days, got %d", tc.wantDays, *info.DaysUntilExpiry)
			}
			if info.IsExpired != tc.wantExpired {
				t.Fatalf("expected isExpired=%v, got %v", tc.wantExpired, info.IsExpired)
			}
			if info.IsExpiringSoon != tc.wantExpiring {
				t.Fatalf("expected isExpiringSoon=%v, got %v", tc.wantExpiring, info.IsExpiringSoon)
			}
		})
	}
}

// A document expiring exactly today sits outside both classifications.
func TestClassifyExpiryDayOfExpiryBoundary(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	expiry := now

	info := ClassifyExpiry(&expiry, now)
	if info.DaysUntilExpiry == nil || *info.DaysUntilExpiry != 0 {
		t.Fatalf("expected 0 days, got %+v", info)
	}
	if info.IsExpired {
		t.Fatal("day-of-expiry must not classify as expired")
	}
	if info.IsExpiringSoon {
		t.Fatal("day-of-expiry must not classify as expiring soon")
	}
}

func TestAggregateDocuments(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -3)

	records := []Document{
		{ID: 1, Category: CategoryHealthReport, Status: StatusActive, FileSize: 100, ExpiryDate: &soon},
		{ID: 2, Category: CategoryContract, Status: StatusActive, FileSize: 200, ExpiryDate: &past},
		{ID: 3, Category: CategoryContract, Status: StatusArchived, FileSize: 300},
	}

	summary := AggregateDocuments(records, now)
	if summary.Total != 3 {
		t.Fatalf("expected total 3, got %d", summary.Total)
	}
	if summary.ByCategory[CategoryContract] != 2 {
		t.Fatalf("expected 2 contracts, got %d", summary.ByCategory[CategoryContract])
	}
	if summary.ByCategory[CategoryCertificate] != 0 {
		t.Fatal("expected zero bucket for certificates to be present")
	}
	if summary.ExpiredCount != 1 || summary.ExpiringCount != 1 {
		t.Fatalf("expected 1 expired / 1 expiring, got %d / %d", summary.ExpiredCount, summary.ExpiringCount)
	}
	if summary.TotalBytes != 600 {
		t.Fatalf("expected 600 bytes, got %d", summary.TotalBytes)
	}

	// Persisted status is independent of derived expiry: record 2 is past its
	// expiry date but still counted under its stored "active" status.
	if summary.ByStatus[StatusActive] != 2 {
		t.Fatalf("expected 2 active by stored status, got %d", summary.ByStatus[StatusActive])
	}
}

func TestAggregateDocumentsEmpty(t *testing.T) {
	summary := AggregateDocuments(nil, time.Now())
	if summary.Total != 0 || summary.ExpiredCount != 0 || summary.ExpiringCount != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
	for _, category := range AllCategories {
		if _, ok := summary.ByCategory[category]; !ok {
			t.Fatalf("missing bucket for %q", category)
		}
	}
}
