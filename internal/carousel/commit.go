package carousel

// DefaultCommitThreshold is the live movement needed to change panels.
const DefaultCommitThreshold = 120

// Outcome classifies a commit decision.
type Outcome int

const (
	OutcomeSnapBack Outcome = iota
	OutcomeAdvance
	OutcomeRetreat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvance:
		return "advance"
	case OutcomeRetreat:
		return "retreat"
	default:
		return "snap_back"
	}
}

// CommitPolicy decides where a drag lands on release.
type CommitPolicy struct {
	Threshold float64
}

// Decide returns the target panel for a drag of the given live movement.
// Positive movement (pointer dragged left) reveals the next panel, negative
// movement the previous one. Anything short of the threshold, or a move
// past either end, resolves to the active panel.
func (p CommitPolicy) Decide(movement float64, idx Index) int {
	target, _ := p.decide(movement, idx)
	return target
}

func (p CommitPolicy) decide(movement float64, idx Index) (int, Outcome) {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultCommitThreshold
	}
	switch {
	case movement >= threshold && idx.HasNext():
		return idx.Next, OutcomeAdvance
	case movement <= -threshold && idx.HasPrev():
		return idx.Prev, OutcomeRetreat
	default:
		return idx.Active, OutcomeSnapBack
	}
}
