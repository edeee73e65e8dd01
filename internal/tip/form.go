package tip

import "math"

// RawInputs are the field values exactly as the user entered them.
// TipSlider, when set, takes precedence over TipPercent. A nil TipPercent
// means the caller never offered the field, which is not the same as an
// empty entry.
type RawInputs struct {
	BillAmount  string   `json:"bill_amount"`
	TipPercent  *string  `json:"tip_percent,omitempty"`
	TipSlider   *float64 `json:"tip_slider,omitempty"`
	PeopleCount string   `json:"people_count"`
	TaxAmount   string   `json:"tax_amount"`
}

type ParsedInputs struct {
	BillAmount  float64 `json:"bill_amount"`
	TipPercent  float64 `json:"tip_percent"`
	PeopleCount float64 `json:"people_count"`
	TaxAmount   float64 `json:"tax_amount"`

	// Defaulted names the fields that fell back to their default value.
	Defaulted []string `json:"-"`
}

type CalculatedOutputs struct {
	TipValue      float64 `json:"tip_value"`
	Total         float64 `json:"total"`
	CostPerPerson float64 `json:"cost_per_person"`
}

type Result struct {
	Inputs  ParsedInputs      `json:"inputs"`
	Outputs CalculatedOutputs `json:"outputs"`

	// ShowPerPerson is false when nobody is splitting the bill.
	ShowPerPerson bool `json:"show_per_person"`
}

// Parse sanitizes raw into numeric inputs under p. An absent tip uses
// p.DefaultTipPercent; empty or unparsable tip text falls back to 0.
func Parse(raw RawInputs, p Policy) ParsedInputs {
	var in ParsedInputs

	in.BillAmount = ParseAmount(raw.BillAmount)
	if !Valid(raw.BillAmount) {
		in.Defaulted = append(in.Defaulted, "bill_amount")
	}
	in.TaxAmount = ParseAmount(raw.TaxAmount)
	if !Valid(raw.TaxAmount) {
		in.Defaulted = append(in.Defaulted, "tax_amount")
	}

	switch {
	case raw.TipSlider != nil:
		slider := DefaultSlider()
		if p.Slider != nil {
			slider = *p.Slider
		}
		in.TipPercent = slider.Snap(*raw.TipSlider)
	case raw.TipPercent == nil:
		in.TipPercent = p.DefaultTipPercent
		if p.Slider != nil {
			in.TipPercent = p.Slider.Snap(in.TipPercent)
		}
	default:
		in.TipPercent = ParsePercent(*raw.TipPercent)
		if !Valid(*raw.TipPercent) {
			in.Defaulted = append(in.Defaulted, "tip_percent")
		}
		if p.Slider != nil {
			in.TipPercent = p.Slider.Snap(in.TipPercent)
		}
	}

	// ParsePeopleCount floors at one person; the policy may raise that floor.
	in.PeopleCount = math.Max(ParsePeopleCount(raw.PeopleCount), float64(p.MinPeopleCount))
	if !Valid(raw.PeopleCount) {
		in.Defaulted = append(in.Defaulted, "people_count")
	}

	return in
}

// Calculate runs the engine over already-sanitized inputs. Finite inputs can
// still overflow (a bill of 1e308 at 100%); such outputs saturate at
// math.MaxFloat64 so every output stays a finite, non-negative number.
func Calculate(in ParsedInputs) CalculatedOutputs {
	out := CalculatedOutputs{
		TipValue:      saturate(ComputeTip(in.BillAmount, in.TipPercent)),
		Total:         saturate(ComputeTotal(in.BillAmount, in.TipPercent, in.TaxAmount)),
		CostPerPerson: ComputeSplit(in.BillAmount, in.TipPercent, in.PeopleCount, in.TaxAmount),
	}
	if math.IsInf(out.CostPerPerson, 0) || math.IsNaN(out.CostPerPerson) {
		out.CostPerPerson = out.Total / in.PeopleCount
	}
	return out
}

func saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

// Evaluate recomputes the whole form from raw field values.
func Evaluate(raw RawInputs, p Policy) Result {
	in := Parse(raw, p)
	return Result{
		Inputs:        in,
		Outputs:       Calculate(in),
		ShowPerPerson: in.PeopleCount > 1,
	}
}
