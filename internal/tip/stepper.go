package tip

import "fmt"

// Action is a split-count adjustment.
type Action string

const (
	Increment Action = "increment"
	Decrement Action = "decrement"
)

// Stepper owns a people count that never drops below its floor. This is the
// only place the count is mutated, so ComputeSplit never sees fewer than one
// person.
type Stepper struct {
	count int
	min   int
}

// NewStepper starts a count at its floor. Floors below 1 are raised to 1.
func NewStepper(min int) *Stepper {
	if min < 1 {
		min = 1
	}
	return &Stepper{count: min, min: min}
}

// StepperAt resumes a count held by a caller, lifting it to the floor when
// it is already below.
func StepperAt(count, min int) *Stepper {
	s := NewStepper(min)
	if count > s.min {
		s.count = count
	}
	return s
}

// Apply performs action and returns the new count. Unknown actions leave the
// count unchanged and return an error.
func (s *Stepper) Apply(action Action) (int, error) {
	switch action {
	case Increment:
		s.count++
	case Decrement:
		// no-op at the floor
		if s.count > s.min {
			s.count--
		}
	default:
		return s.count, fmt.Errorf("unknown split action %q", action)
	}
	return s.count, nil
}

func (s *Stepper) Increment() int {
	n, _ := s.Apply(Increment)
	return n
}

func (s *Stepper) Decrement() int {
	n, _ := s.Apply(Decrement)
	return n
}

func (s *Stepper) Count() int {
	return s.count
}
