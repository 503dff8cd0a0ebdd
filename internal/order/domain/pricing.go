package domain

// VAT and tax apply to the sum of base and extras. Extras are a one-time
// add-on charge per cart entry and are not multiplied by line quantity.
const (
	VATRate = 0.15
	TaxRate = 0.05
)

// Totals is the derived pricing of a set of lines. Amounts stay
// unrounded; two-decimal rounding happens at display only.
type Totals struct {
	Base   float64
	Extras float64
	VAT    float64
	Tax    float64
	Total  float64
}

// Price computes order totals from lines. Pure and deterministic.
func Price(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.Base += l.UnitPrice * float64(l.Quantity)
		for _, e := range l.Extras {
			t.Extras += e.Price
		}
	}
	taxable := t.Base + t.Extras
	t.VAT = taxable * VATRate
	t.Tax = taxable * TaxRate
	t.Total = taxable + t.VAT + t.Tax
	return t
}
