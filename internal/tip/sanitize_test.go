package tip

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 0},
		{in: "abc", want: 0},
		{in: "100", want: 100},
		{in: "100.50", want: 100.5},
		{in: " 42.1 ", want: 42.1},
		{in: ".5", want: 0.5},
		{in: "-5", want: 0},
		{in: "NaN", want: 0},
		{in: "Inf", want: 0},
		{in: "1,000", want: 0},
		{in: "12.3.4", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseAmount(tc.in); got != tc.want {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePercentHasNoCeiling(t *testing.T) {
	if got := ParsePercent("250"); got != 250 {
		t.Fatalf("expected 250, got %v", got)
	}
	if got := ParsePercent("x"); got != 0 {
		t.Fatalf("expected fallback 0, got %v", got)
	}
}

func TestParsePeopleCount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 1},
		{in: "abc", want: 1},
		{in: "0", want: 1},
		{in: "0.5", want: 1},
		{in: "-3", want: 1},
		{in: "1", want: 1},
		{in: "4", want: 4},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParsePeopleCount(tc.in); got != tc.want {
				t.Fatalf("ParsePeopleCount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIsIdempotentOnItsOwnOutput(t *testing.T) {
	for _, in := range []string{"", "abc", "12.75", "-1"} {
		first := ParseAmount(in)
		second := ParseAmount(formatPlain(first))
		if first != second {
			t.Fatalf("ParseAmount not stable for %q: %v then %v", in, first, second)
		}
	}
}
