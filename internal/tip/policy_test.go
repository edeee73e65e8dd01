package tip

import (
	"slices"
	"testing"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if p.DefaultTipPercent != 15 {
		t.Fatalf("expected default tip 15, got %v", p.DefaultTipPercent)
	}
	if p.MinPeopleCount != 1 {
		t.Fatalf("expected min people 1, got %d", p.MinPeopleCount)
	}
	if p.MaxAmountChars != 7 || p.MaxPercentChars != 5 {
		t.Fatalf("unexpected length limits %d/%d", p.MaxAmountChars, p.MaxPercentChars)
	}
	if p.Slider != nil {
		t.Fatal("expected free-text tip entry by default")
	}
}

func TestSliderStops(t *testing.T) {
	got := DefaultSlider().Stops()
	want := []float64{15, 18, 21, 24, 27, 30}
	if !slices.Equal(got, want) {
		t.Fatalf("expected stops %v, got %v", want, got)
	}
}

func TestSliderSnap(t *testing.T) {
	s := DefaultSlider()
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 15},
		{in: 15, want: 15},
		{in: 16.4, want: 15},
		{in: 17, want: 18},
		{in: 20, want: 21},
		{in: 29, want: 30},
		{in: 45, want: 30},
	}

	for _, tc := range tests {
		if got := s.Snap(tc.in); got != tc.want {
			t.Fatalf("Snap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	continuous := Slider{Min: 15, Max: 30}
	if got := continuous.Snap(22.6); got != 23 {
		t.Fatalf("continuous Snap(22.6) = %v, want 23", got)
	}
}

func TestLimitEntry(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		proposed string
		max      int
		want     string
	}{
		{name: "within limit", current: "12", proposed: "123", max: 7, want: "123"},
		{name: "at limit", current: "123456", proposed: "1234567", max: 7, want: "1234567"},
		{name: "over limit keeps current", current: "1234567", proposed: "12345678", max: 7, want: "1234567"},
		{name: "percent limit", current: "12.5", proposed: "12.55", max: 5, want: "12.55"},
		{name: "percent over", current: "12.55", proposed: "12.555", max: 5, want: "12.55"},
		{name: "unlimited", current: "", proposed: "123456789", max: 0, want: "123456789"},
		{name: "deletion always fits", current: "1234567", proposed: "123456", max: 7, want: "123456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LimitEntry(tc.current, tc.proposed, tc.max); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
