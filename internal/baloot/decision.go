package baloot

// BidComponents breaks down the inputs the bid optimizer weighed, for
// debuggability (spec.md §6).
type BidComponents struct {
	SunStrength     float64
	HokumStrength   float64
	BestHokumSuit   Suit
	ProjectedTricks float64
	QuickTricks     float64
	ShapeAdjustment float64
	PressureDelta   float64
	ShouldDouble    bool
	ShouldSteal     bool
}

// BidDecision is the tagged Decision variant returned by decide_bid.
type BidDecision struct {
	Action     BidAction
	Confidence float64
	Reasoning  string
	Components BidComponents
}

// PlayDecision is the tagged Decision variant returned by decide_play.
type PlayDecision struct {
	CardIndex        int
	StrategyLabel    string
	Confidence       float64
	Reasoning        string
	ModulesConsulted []string
}
