package quote

import "time"

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Quote struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"companyId"`
	CompanyName     string    `json:"companyName,omitempty"`
	Status          Status    `json:"status"`
	DiscountPercent float64   `json:"discountPercent"`
	VATPercent      float64   `json:"vatPercent"`
	Lines           []Line    `json:"lines,omitempty"`
	Totals          Totals    `json:"totals"`
	ValidUntil      time.Time `json:"validUntil"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Line struct {
	ID        int64   `json:"id"`
	QuoteID   int64   `json:"quoteId,omitempty"`
	Service   string  `json:"service"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	VAT        float64 `json:"vat"`
	GrandTotal float64 `json:"grandTotal"`
}
