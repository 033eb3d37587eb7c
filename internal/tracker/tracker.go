// Package tracker implements the card tracker of spec.md §4.1: exact
// bookkeeping of which cards are still unseen, plus a probabilistic
// void matrix P[position][suit] fed by the host's sequential event
// stream and gated by difficulty.
package tracker

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/tazjel/baloot-ai/internal/baloot"
)

// bayesStep is the fixed per-observation decrement applied to
// P[p][suit] for positions that have not yet played to the current
// trick, scaled by how much of the suit remains unseen. This resolves
// the open question in spec.md §9 ("decrement toward 0... not
// anchored to a rate") with a concrete, documented constant.
const bayesStep = 0.15

// dropRate is the fraction of on_trick_card calls a given difficulty
// ignores entirely (no void-matrix update, though the unseen-card
// bookkeeping that masterness depends on always stays exact — a
// difficulty-gated memory lapse is about reading voids, not about
// losing track of which cards physically exist).
func dropRate(d baloot.Difficulty) float64 {
	switch d {
	case baloot.Easy:
		return 0.40
	case baloot.Medium:
		return 0.10
	default:
		return 0.0
	}
}

// Tracker is recreated at the start of every round (Begin) and fed
// each completed trick exactly once via Observe; it is never shared
// across rounds (spec.md §3 "Card tracker").
type Tracker struct {
	mode       baloot.Mode
	trump      baloot.Suit
	myPosition baloot.Position
	difficulty baloot.Difficulty
	rng        *rand.Rand

	unseen map[baloot.Card]bool // cards not in my hand and not yet played by anyone

	// voidMatrix[p][s] = P[position p][suit s], 1 = certainly void.
	voidMatrix *mat.Dense

	// recordedCards dedupes on_trick_card calls for idempotence (P7):
	// replaying the same (seat, card) event twice is a no-op. The
	// host is expected to deliver each play exactly once; this is a
	// belt-and-suspenders guard, not a substitute for that contract.
	recordedCards map[baloot.Card]bool

	playedThisTrick map[baloot.Position]bool
}

// Begin creates a new round-scoped tracker (tracker_begin_round in
// spec.md §6), seeding the void matrix from bid-history inference.
func Begin(myHand []baloot.Card, myPosition baloot.Position, bidHistory []baloot.BidEntry, mode baloot.Mode, trump baloot.Suit, faceUpCard baloot.Card, difficulty baloot.Difficulty, seed int64) *Tracker {
	t := &Tracker{
		mode:            mode,
		trump:           trump,
		myPosition:      myPosition,
		difficulty:      difficulty,
		rng:             rand.New(rand.NewSource(seed)),
		unseen:          make(map[baloot.Card]bool, 32),
		voidMatrix:      mat.NewDense(4, 4, nil),
		recordedCards:   make(map[baloot.Card]bool),
		playedThisTrick: make(map[baloot.Position]bool),
	}
	for _, c := range baloot.FullDeck() {
		t.unseen[c] = true
	}
	for _, c := range myHand {
		delete(t.unseen, c)
	}
	t.seedBidPrior(bidHistory, faceUpCard)
	return t
}

// seedBidPrior implements bid_prior: a HOKUM bidder is inferred strong
// in trump (lower P[bidder][trump]); every PASS entry, in either
// bidding round, is inferred weaker in the face-up card's suit (higher
// P[passer][suit]). Priors are explicit, not learned, per spec.md
// §4.1 and §9.
func (t *Tracker) seedBidPrior(bidHistory []baloot.BidEntry, faceUpCard baloot.Card) {
	for _, entry := range bidHistory {
		switch entry.Action.Kind {
		case baloot.ActionHokum:
			t.setVoid(entry.Seat, entry.Action.Suit, 0.10)
		case baloot.ActionPass:
			if faceUpCard != (baloot.Card{}) {
				t.raiseVoid(entry.Seat, faceUpCard.Suit, 0.15)
			}
		}
	}
}

func (t *Tracker) setVoid(p baloot.Position, s baloot.Suit, value float64) {
	if s == baloot.NoSuit {
		return
	}
	t.voidMatrix.Set(int(p), int(s), value)
}

func (t *Tracker) raiseVoid(p baloot.Position, s baloot.Suit, delta float64) {
	if s == baloot.NoSuit {
		return
	}
	cur := t.voidMatrix.At(int(p), int(s))
	next := cur + delta
	if next > 1 {
		next = 1
	}
	t.voidMatrix.Set(int(p), int(s), next)
}

func (t *Tracker) lowerVoid(p baloot.Position, s baloot.Suit, delta float64) {
	if s == baloot.NoSuit {
		return
	}
	cur := t.voidMatrix.At(int(p), int(s))
	// Voids are absorbing (I2): never lower a confirmed void.
	if cur >= 1 {
		return
	}
	next := cur - delta
	if next < 0 {
		next = 0
	}
	t.voidMatrix.Set(int(p), int(s), next)
}

// remainingInSuitCount counts unseen cards of a suit (used to scale
// the Bayesian step).
func (t *Tracker) remainingInSuitCount(s baloot.Suit) int {
	n := 0
	for c := range t.unseen {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// OnTrickCard records one play within the trick currently in
// progress. leadSuit is the effective led suit of that trick. Must be
// called once per card, in play order, as the host's event stream
// delivers them.
func (t *Tracker) OnTrickCard(seat baloot.Position, card baloot.Card, leadSuit baloot.Suit) {
	if t.recordedCards[card] {
		return // idempotent: already observed this exact card (P7)
	}
	t.recordedCards[card] = true
	delete(t.unseen, card) // exact bookkeeping always happens (I1)

	dropped := t.difficulty != baloot.Hard && t.difficulty != baloot.Expert && t.rng.Float64() < dropRate(t.difficulty)

	remaining := t.remainingInSuitCount(leadSuit)

	if !dropped && card.Suit != leadSuit && leadSuit != baloot.NoSuit {
		t.setVoid(seat, leadSuit, 1.0)
	}

	if !dropped {
		step := bayesStep * (float64(remaining) / 8.0)
		for _, p := range baloot.Positions {
			if p == seat || t.playedThisTrick[p] {
				continue
			}
			t.lowerVoid(p, leadSuit, step)
		}
	}

	t.playedThisTrick[seat] = true
}

// EndTrick resets per-trick bookkeeping once a trick completes; the
// next OnTrickCard call starts a fresh trick.
func (t *Tracker) EndTrick() {
	t.playedThisTrick = make(map[baloot.Position]bool)
}

// Observe replays an already-completed trick through OnTrickCard in
// play order and then closes out the trick (tracker_observe in
// spec.md §6).
func (t *Tracker) Observe(trick baloot.CompletedTrick) {
	if len(trick.Cards) == 0 {
		return
	}
	leadSuit := trick.Cards[0].Card.EffectiveSuit(t.mode, t.trump)
	for _, tc := range trick.Cards {
		t.OnTrickCard(tc.Seat, tc.Card, leadSuit)
	}
	t.EndTrick()
}

// IsMaster reports whether card is currently known to beat every
// unseen card that could still face it in a trick: always recomputed,
// never cached. For a trump card this is exactly spec.md I5/P6's
// within-suit masterness test. For a non-trump card it is stricter: a
// non-trump card can never out-rank an unseen trump, so IsMaster
// answers "is this a trick master" rather than "is this the top
// remaining card of its own suit" — a non-trump ace with every unseen
// trump still in play returns false here even though P6's literal
// within-suit test would call it master. Deliberate: every caller
// (kaboot's MASTER_FIRST lead, the mid-game planner, the lead
// selector and seat strategy, the brain's lead choice) wants "will this
// actually win the trick," not "is this the best of its suit on paper."
func (t *Tracker) IsMaster(card baloot.Card) bool {
	for c := range t.unseen {
		if c.Equal(card) {
			continue
		}
		if c.EffectiveSuit(t.mode, t.trump) != card.EffectiveSuit(t.mode, t.trump) {
			// A trump card can still be beaten only by a higher trump,
			// so cross-suit unseen cards are skipped for it. A non-trump
			// card ignores unseen cards of other non-trump suits, but
			// any unseen trump means it is not a trick master.
			if card.IsTrump(t.mode, t.trump) {
				continue
			}
			if c.IsTrump(t.mode, t.trump) {
				return false
			}
			continue
		}
		if c.Beats(card, t.mode, t.trump) {
			return false
		}
	}
	return true
}

// RemainingInSuit returns the unseen cards of a suit, in deterministic
// rank order.
func (t *Tracker) RemainingInSuit(suit baloot.Suit) []baloot.Card {
	out := make([]baloot.Card, 0, 8)
	for _, r := range baloot.Ranks {
		c := baloot.NewCard(r, suit)
		if t.unseen[c] {
			out = append(out, c)
		}
	}
	return out
}

// GetVoids returns the positions considered certainly void (P == 1)
// in the given suit.
func (t *Tracker) GetVoids(suit baloot.Suit) []baloot.Position {
	var out []baloot.Position
	for _, p := range baloot.Positions {
		if t.voidMatrix.At(int(p), int(suit)) >= 1.0 {
			out = append(out, p)
		}
	}
	return out
}

// VoidProbability returns P[position][suit].
func (t *Tracker) VoidProbability(p baloot.Position, s baloot.Suit) float64 {
	return t.voidMatrix.At(int(p), int(s))
}

// UnseenCount returns how many cards remain unseen overall.
func (t *Tracker) UnseenCount() int {
	return len(t.unseen)
}

// Unseen returns a snapshot slice of all unseen cards.
func (t *Tracker) Unseen() []baloot.Card {
	out := make([]baloot.Card, 0, len(t.unseen))
	for c := range t.unseen {
		out = append(out, c)
	}
	return out
}
