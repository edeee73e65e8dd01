package tip

// ComputeTip returns the gratuity on billAmount at tipPercent.
func ComputeTip(billAmount, tipPercent float64) float64 {
	return tipPercent / 100 * billAmount
}

// ComputeTotal returns bill plus tip plus a flat tax amount.
func ComputeTotal(billAmount, tipPercent, taxAmount float64) float64 {
	return ComputeTip(billAmount, tipPercent) + billAmount + taxAmount
}

// ComputeSplit returns the per-person share of the total. peopleCount must be
// at least 1; callers enforce that where the count is mutated.
func ComputeSplit(billAmount, tipPercent, peopleCount, taxAmount float64) float64 {
	return ComputeTotal(billAmount, tipPercent, taxAmount) / peopleCount
}
