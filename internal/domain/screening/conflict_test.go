package screening

import "testing"

func TestDetectConflictsOverlap(t *testing.T) {
	a := Screening{ID: 1, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}
	b := Screening{ID: 2, Date: day(2024, 1, 10), TimeStart: "09:30", TimeEnd: "10:30", Status: StatusScheduled}

	conflicts := DetectConflicts(a, []Screening{b})
	if len(conflicts) != 1 || conflicts[0].ID != b.ID {
		t.Fatalf("expected [b], got %+v", conflicts)
	}

	b.Status = StatusCancelled
	conflicts = DetectConflicts(a, []Screening{b})
	if len(conflicts) != 0 {
		t.Fatalf("cancelled screening must not conflict, got %+v", conflicts)
	}
}

func TestDetectConflictsExcludesSelf(t *testing.T) {
	a := Screening{ID: 1, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}
	b := Screening{ID: 2, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}

	conflicts := DetectConflicts(a, []Screening{a, b})
	for _, c := range conflicts {
		if c.ID == a.ID {
			t.Fatal("conflict set contains the target itself")
		}
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly [b], got %+v", conflicts)
	}
}

func TestDetectConflictsBackToBack(t *testing.T) {
	a := Screening{ID: 1, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}
	b := Screening{ID: 2, Date: day(2024, 1, 10), TimeStart: "10:00", TimeEnd: "11:00", Status: StatusScheduled}

	if got := DetectConflicts(a, []Screening{b}); len(got) != 0 {
		t.Fatalf("back-to-back screenings must not conflict, got %+v", got)
	}
	if got := DetectConflicts(b, []Screening{a}); len(got) != 0 {
		t.Fatalf("back-to-back screenings must not conflict, got %+v", got)
	}
}

func TestDetectConflictsDifferentDate(t *testing.T) {
	a := Screening{ID: 1, Date: day(2024, 1, 10), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}
	b := Screening{ID: 2, Date: day(2024, 1, 11), TimeStart: "09:00", TimeEnd: "10:00", Status: StatusScheduled}

	if got := DetectConflicts(a, []Screening{b}); len(got) != 0 {
		t.Fatalf("different dates must not conflict, got %+v", got)
	}
}

func TestDetectConflictsSymmetry(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   string
		bStart, bEnd   string
		expectConflict bool
	}{
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"containment", "09:00", "12:00", "10:00", "11:00", true},
		{"identical interval", "09:00", "10:00", "09:00", "10:00", true},
		{"disjoint", "09:00", "10:00", "13:00", "14:00", false},
		{"adjacent", "09:00", "10:00", "10:00", "11:00", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := Screening{ID: 1, Date: day(2024, 5, 2), TimeStart: tc.aStart, TimeEnd: tc.aEnd, Status: StatusScheduled}
			b := Screening{ID: 2, Date: day(2024, 5, 2), TimeStart: tc.bStart, TimeEnd: tc.bEnd, Status: StatusScheduled}

			aSeesB := len(DetectConflicts(a, []Screening{b})) == 1
			bSeesA := len(DetectConflicts(b, []Screening{a})) == 1
			if aSeesB != bSeesA {
				t.Fatalf("asymmetric conflict detection: a→b=%v b→a=%v", aSeesB, bSeesA)
			}
			if aSeesB != tc.expectConflict {
				t.Fatalf("expected conflict=%v, got %v", tc.expectConflict, aSeesB)
			}
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid", "09:00", "10:00", false},
		{"equal", "09:00", "09:00", true},
		{"inverted", "10:00", "09:00", true},
		{"malformed start", "9am", "10:00", true},
		{"malformed end", "09:00", "25:61", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTimeRange(tc.start, tc.end)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
