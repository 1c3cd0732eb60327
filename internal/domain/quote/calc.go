package quote

import "math"

// ComputeTotals derives quote totals from its lines. Discount applies to the
// subtotal, VAT to the discounted amount. All figures round to cents.
func ComputeTotals(lines []Line, discountPercent, vatPercent float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += float64(line.Quantity) * line.UnitPrice
	}

	discount := subtotal * discountPercent / 100
	taxable := subtotal - discount
	vat := taxable * vatPercent / 100

	return Totals{
		Subtotal:   roundCents(subtotal),
		Discount:   roundCents(discount),
		VAT:        roundCents(vat),
		GrandTotal: roundCents(taxable + vat),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
