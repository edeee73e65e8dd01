package tipcalc

import "tippy/internal/tip"

// CalculateResponse is the JSON response for POST /tip/calculate.
type CalculateResponse struct {
	Inputs        tip.ParsedInputs      `json:"inputs"`
	Outputs       tip.CalculatedOutputs `json:"outputs"`
	Formatted     FormattedOutputs      `json:"formatted"`
	PeopleCount   int                   `json:"people_count"`
	ShowPerPerson bool                  `json:"show_per_person"`
	Currency      string                `json:"currency"`
	CurrencyScale int                   `json:"currency_scale"` // minor-unit digits in Formatted
}

// FormattedOutputs holds the display strings for each calculated value.
type FormattedOutputs struct {
	Tip           string `json:"tip"`
	Total         string `json:"total"`
	CostPerPerson string `json:"cost_per_person"`
}

// SplitRequest is the JSON body for POST /tip/split.
type SplitRequest struct {
	PeopleCount int        `json:"people_count"`
	Action      tip.Action `json:"action"` // "increment" or "decrement"
}

// SplitResponse is the JSON response for POST /tip/split.
type SplitResponse struct {
	PeopleCount int `json:"people_count"`
}

// EntryRequest is one proposed edit to a length-bounded field.
type EntryRequest struct {
	Field    string `json:"field"`
	Current  string `json:"current"`
	Proposed string `json:"proposed"`
}

// EntryResponse carries the value the field holds after the edit.
type EntryResponse struct {
	Value    string `json:"value"`
	Accepted bool   `json:"accepted"`
}

// PolicyResponse is the JSON response for GET /tip/policy.
type PolicyResponse struct {
	tip.Policy
	SliderStops   []float64 `json:"slider_stops,omitempty"` // only when a slider is configured
	Locale        string    `json:"locale"`
	Currency      string    `json:"currency"`
	CurrencyScale int       `json:"currency_scale"`
}
