package document

import (
	"math"
	"time"
)

const expiringSoonDays = 30

type ExpiryInfo struct {
	DaysUntilExpiry *int `json:"daysUntilExpiry"`
	IsExpired       bool `json:"isExpired"`
	IsExpiringSoon  bool `json:"isExpiringSoon"`
}

// ClassifyExpiry derives the expiry state from a nullable expiry date. A nil
// date means no classification at all. A document expiring exactly today is
// neither expired nor expiring-soon; the window is (0, 30] days.
//
// The persisted Status field is a separate signal maintained independently;
// this function never consults it.
func ClassifyExpiry(expiryDate *time.Time, now time.Time) ExpiryInfo {
	if expiryDate == nil {
		return ExpiryInfo{}
	}

	days := int(math.Ceil(expiryDate.Sub(now).Hours() / 24))
	return ExpiryInfo{
		DaysUntilExpiry: &days,
		IsExpired:       days < 0,
		IsExpiringSoon:  days > 0 && days <= expiringSoonDays,
	}
}
