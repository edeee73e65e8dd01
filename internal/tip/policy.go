package tip

import "math"

// Policy holds the caller-side constants that feed the calculation core.
// None of these are read by the Engine functions themselves.
type Policy struct {
	DefaultTipPercent float64 `json:"default_tip_percent"`
	MinPeopleCount    int     `json:"min_people_count"`
	MaxAmountChars    int     `json:"max_amount_chars"`
	MaxPercentChars   int     `json:"max_percent_chars"`
	Slider            *Slider `json:"slider,omitempty"`
}

// Slider is a bounded tip-percent control. Steps is the number of discrete
// stops strictly between Min and Max; zero means continuous.
type Slider struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Steps int     `json:"steps"`
}

const (
	DefaultTipPercent = 15
	MinPeopleCount    = 1
	MaxAmountChars    = 7
	MaxPercentChars   = 5
)

// DefaultSlider is the 15–30% slider with four intermediate stops.
func DefaultSlider() Slider {
	return Slider{Min: 15, Max: 30, Steps: 4}
}

// DefaultPolicy returns free-text tip entry with the standard limits.
func DefaultPolicy() Policy {
	return Policy{
		DefaultTipPercent: DefaultTipPercent,
		MinPeopleCount:    MinPeopleCount,
		MaxAmountChars:    MaxAmountChars,
		MaxPercentChars:   MaxPercentChars,
	}
}

// Stops lists every reachable slider value, in ascending order.
func (s Slider) Stops() []float64 {
	if s.Steps <= 0 {
		return []float64{s.Min, s.Max}
	}
	n := s.Steps + 1
	width := (s.Max - s.Min) / float64(n)
	stops := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		stops = append(stops, s.Min+float64(i)*width)
	}
	return stops
}

// Snap clamps v into the slider range, moves it to the nearest stop and
// rounds to a whole percent.
func (s Slider) Snap(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Min
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Steps > 0 {
		width := (s.Max - s.Min) / float64(s.Steps+1)
		v = s.Min + math.Round((v-s.Min)/width)*width
	}
	return math.Round(v)
}

// LimitEntry is the keystroke filter for length-bounded fields: proposed is
// accepted only when it fits in max characters, otherwise current is kept.
// A non-positive max disables the limit.
func LimitEntry(current, proposed string, max int) string {
	if max <= 0 || len([]rune(proposed)) <= max {
		return proposed
	}
	return current
}
