package screening

import "time"

// ValidateTimeRange checks "HH:MM" inputs at the booking boundary. The
// analytics functions assume this held at creation and do not re-check.
func ValidateTimeRange(timeStart, timeEnd string) error {
	if _, err := time.Parse("15:04", timeStart); err != nil {
		return ErrInvalidTimeRange
	}
	if _, err := time.Parse("15:04", timeEnd); err != nil {
		return ErrInvalidTimeRange
	}
	if timeStart >= timeEnd {
		return ErrInvalidTimeRange
	}
	return nil
}

// Window is an inclusive calendar-date range for trend comparisons.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Criteria() Criteria {
	return Criteria{DateStart: w.Start, DateEnd: w.End}
}

func ThisMonth(now time.Time) Window {
	year, month, _ := now.UTC().Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

func LastMonth(now time.Time) Window {
	year, month, _ := now.UTC().Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// ThisWeek runs Monday through Sunday around now.
func ThisWeek(now time.Time) Window {
	year, month, day := now.UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := today.AddDate(0, 0, 1-weekday)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

func LastWeek(now time.Time) Window {
	current := ThisWeek(now)
	return Window{Start: current.Start.AddDate(0, 0, -7), End: current.End.AddDate(0, 0, -7)}
}
