package document

import (
	"reflect"
	"testing"
	"time"
)

func ptr(v int64) *int64 { return &v }

func sampleDocuments() []Document {
	return []Document{
		{ID: 1, Title: "Hearing Test Results", FileName: "audio-2024.pdf", Category: CategoryHealthReport, Status: StatusActive, CompanyID: ptr(1), CompanyName: "Acme Mining", UploadDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Service Contract", FileName: "contract.pdf", Category: CategoryContract, Status: StatusActive, CompanyID: ptr(2), CompanyName: "Borda Textile", UploadDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Old Certificate", FileName: "cert.pdf", Category: CategoryCertificate, Status: StatusArchived, UploadDate: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFilterDocuments(t *testing.T) {
	records := sampleDocuments()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []int64
	}{
		{"all", Criteria{}, []int64{1, 2, 3}},
		{"by company", Criteria{CompanyID: 1}, []int64{1}},
		{"company filter skips unlinked documents", Criteria{CompanyID: 3}, []int64{}},
		{"by category", Criteria{Category: CategoryContract}, []int64{2}},
		{"by status", Criteria{Status: StatusArchived}, []int64{3}},
		{"upload date range", Criteria{DateStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), DateEnd: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}, []int64{2}},
		{"search title", Criteria{SearchText: "hearing"}, []int64{1}},
		{"search file name", Criteria{SearchText: "CERT.PDF"}, []int64{3}},
		{"search company name", Criteria{SearchText: "borda"}, []int64{2}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := FilterDocuments(records, tc.criteria)
			gotIDs := make([]int64, 0, len(got))
			for _, record := range got {
				gotIDs = append(gotIDs, record.ID)
			}
			if !reflect.DeepEqual(gotIDs, tc.wantIDs) {
				t.Fatalf("expected ids %v, got %v", tc.wantIDs, gotIDs)
			}
		})
	}
}
