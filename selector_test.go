package hillclimb

import (
	test "testing"
)

func TestSelectTransitions(t *test.T) {
	asc := Ascending[int]()

	for _, tc := range []struct {
		parent, child, best int
		expected            Transition
	}{
		{5, 6, 5, Discard},
		{5, 5, 5, Hold},
		{5, 4, 5, Promote},
		{5, 4, 3, Advance},
		{5, 3, 4, Promote},
		{5, 4, 4, Advance},
	} {
		if actual := Select(asc, tc.parent, tc.child, tc.best); actual != tc.expected {
			t.Errorf("Select(parent=%d, child=%d, best=%d)\nExpected: %v\nActual: %v",
				tc.parent, tc.child, tc.best, tc.expected, actual)
		}
	}
}

func TestSelectDescending(t *test.T) {
	desc := Descending[int]()

	if actual := Select(desc, 5, 6, 5); actual != Promote {
		t.Errorf("Expected a numerically higher child to be promoted, got %v", actual)
	}
	if actual := Select(desc, 5, 4, 5); actual != Discard {
		t.Errorf("Expected a numerically lower child to be discarded, got %v", actual)
	}
}

func TestTransitionString(t *test.T) {
	if Promote.String() != "promote" || Transition(42).String() != "unknown" {
		t.Errorf("Unexpected transition names: %v %v", Promote, Transition(42))
	}
}
