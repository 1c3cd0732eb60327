package screening

import "math"

type Trend struct {
	CurrentCount  int  `json:"currentCount"`
	PreviousCount int  `json:"previousCount"`
	ChangePercent int  `json:"changePercent"`
	IsPositive    bool `json:"isPositive"`
}

// CompareTrend compares two pre-filtered windows of equal duration. A zero
// previous window reports 0% rather than an infinite change; zero change
// counts as positive.
func CompareTrend(current, previous []Screening) Trend {
	trend := Trend{
		CurrentCount:  len(current),
		PreviousCount: len(previous),
	}
	if trend.PreviousCount != 0 {
		delta := float64(trend.CurrentCount-trend.PreviousCount) / float64(trend.PreviousCount)
		trend.ChangePercent = int(math.Round(100 * delta))
	}
	trend.IsPositive = trend.ChangePercent >= 0
	return trend
}
