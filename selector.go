package hillclimb

// Transition is the outcome of comparing a child against the working parent
// and the best candidate found so far.
type Transition uint8

const (
	// Hold keeps the working parent; the child scored the same.
	Hold Transition = iota
	// Discard drops a child that sorts after the parent.
	Discard
	// Advance makes a child that sorts before the parent the new working
	// parent without touching the best candidate.
	Advance
	// Promote advances to the child and also makes it the best candidate.
	Promote
)

func (t Transition) String() string {
	switch t {
	case Hold:
		return "hold"
	case Discard:
		return "discard"
	case Advance:
		return "advance"
	case Promote:
		return "promote"
	}
	return "unknown"
}

// Select applies the acceptance table:
//
//	order(parent, child)                       -> Discard
//	order(child, parent) && order(child, best) -> Promote
//	order(child, parent)                       -> Advance
//	otherwise                                  -> Hold
//
// Note the direction: a child that sorts after the parent is dropped even
// though the order calls it greater. Callers pick the Order so that the
// values they want to climb towards sort first.
func Select[F any](order Order[F], parent, child, best F) Transition {
	if order(parent, child) {
		return Discard
	}
	if order(child, parent) {
		if order(child, best) {
			return Promote
		}
		return Advance
	}
	return Hold
}
