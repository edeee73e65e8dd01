package tip

import "testing"

func TestStepperDecrementFloor(t *testing.T) {
	s := NewStepper(MinPeopleCount)

	if got := s.Decrement(); got != 1 {
		t.Fatalf("expected decrement at floor to stay 1, got %d", got)
	}

	s.Increment()
	s.Increment()
	if got := s.Count(); got != 3 {
		t.Fatalf("expected 3 after two increments, got %d", got)
	}

	for range 5 {
		s.Decrement()
	}
	if got := s.Count(); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestNewStepperClampsFloor(t *testing.T) {
	s := NewStepper(0)
	if got := s.Decrement(); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestStepperAtApply(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		action  Action
		min     int
		want    int
		wantErr bool
	}{
		{name: "increment", count: 1, action: Increment, min: 1, want: 2},
		{name: "decrement", count: 3, action: Decrement, min: 1, want: 2},
		{name: "decrement at floor", count: 1, action: Decrement, min: 1, want: 1},
		{name: "below floor is lifted", count: -4, action: Decrement, min: 1, want: 1},
		{name: "custom floor", count: 2, action: Decrement, min: 2, want: 2},
		{name: "zero floor means one", count: 0, action: Decrement, min: 0, want: 1},
		{name: "unknown action", count: 2, action: Action("reset"), min: 1, want: 2, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StepperAt(tc.count, tc.min).Apply(tc.action)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
