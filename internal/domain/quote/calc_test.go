package quote

import "testing"

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		lines    []Line
		discount float64
		vat      float64
		want     Totals
	}{
		{
			name:  "no lines",
			lines: nil,
			want:  Totals{},
		},
		{
			name: "plain sum",
			lines: []Line{
				{Service: "Audiometry", Quantity: 10, UnitPrice: 150},
				{Service: "Spirometry", Quantity: 10, UnitPrice: 175},
			},
			want: Totals{Subtotal: 3250, GrandTotal: 3250},
		},
		{
			name: "discount then vat",
			lines: []Line{
				{Service: "Chest X-Ray", Quantity: 4, UnitPrice: 300},
			},
			discount: 10,
			vat:      20,
			want:     Totals{Subtotal: 1200, Discount: 120, VAT: 216, GrandTotal: 1296},
		},
		{
			name: "cent rounding",
			lines: []Line{
				{Service: "CBC", Quantity: 3, UnitPrice: 33.33},
			},
			vat:  18,
			want: Totals{Subtotal: 99.99, VAT: 18.0, GrandTotal: 117.99},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.lines, tc.discount, tc.vat)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
