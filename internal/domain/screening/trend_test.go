package screening

import "testing"

func TestCompareTrend(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		previous     int
		wantPercent  int
		wantPositive bool
	}{
		{"growth", 6, 4, 50, true},
		{"decline", 3, 4, -25, false},
		{"flat", 4, 4, 0, true},
		{"zero previous window", 2, 0, 0, true},
		{"both empty", 0, 0, 0, true},
		{"collapse to zero", 0, 5, -100, false},
		{"rounding", 1, 3, -67, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			current := make([]Screening, tc.current)
			previous := make([]Screening, tc.previous)

			trend := CompareTrend(current, previous)
			if trend.CurrentCount != tc.current || trend.PreviousCount != tc.previous {
				t.Fatalf("counts not carried through: %+v", trend)
			}
			if trend.ChangePercent != tc.wantPercent {
				t.Fatalf("expected %d%%, got %d%%", tc.wantPercent, trend.ChangePercent)
			}
			if trend.IsPositive != tc.wantPositive {
				t.Fatalf("expected isPositive=%v, got %v", tc.wantPositive, trend.IsPositive)
			}
		})
	}
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no-show", StatusScheduled, StatusNoShow, true},
		{"completed is final", StatusCompleted, StatusScheduled, false},
		{"cancelled is final", StatusCancelled, StatusCompleted, false},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("ValidTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
