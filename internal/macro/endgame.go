package macro

import (
	"github.com/tazjel/baloot-ai/internal/baloot"
	"github.com/tazjel/baloot-ai/internal/tracker"
)

// maxBranchingCards bounds how many cards-per-player the solver will
// enumerate exhaustively before giving up and falling back to the
// mid-game planner (spec.md §4.6: "if the branching factor remains
// too large, fall back").
const maxBranchingCards = 3

// Stats mirrors the teacher-idiom searcher stats block (nodes visited,
// prunes) for observability, not correctness.
type Stats struct {
	Nodes  int
	Prunes int
}

// EndgameResult is the solver's verdict: the optimal card to play and
// the expected team-point differential if both sides play the
// resulting line perfectly.
type EndgameResult struct {
	CardIndex  int
	Card       baloot.Card
	Diff       int // positive favors us
	Stats      Stats
	Overflowed bool // true when the solver gave up and the caller should fall back
}

// trickState is a minimal board: whose hands remain, what's on the
// table, and whose turn is next.
type trickState struct {
	hands   [4][]baloot.Card
	table   []baloot.TableCard
	leader  baloot.Position
	toMove  baloot.Position
	mode    baloot.Mode
	trump   baloot.Suit
	usScore int // points captured by our team so far within this search
	lastTrickBonus bool
}

func (s trickState) clone() trickState {
	cp := s
	for i := range s.hands {
		cp.hands[i] = append([]baloot.Card(nil), s.hands[i]...)
	}
	cp.table = append([]baloot.TableCard(nil), s.table...)
	return cp
}

func legalPlays(hand []baloot.Card, table []baloot.TableCard, mode baloot.Mode, trump baloot.Suit) []baloot.Card {
	if len(table) == 0 {
		return hand
	}
	leadSuit := table[0].Card.EffectiveSuit(mode, trump)
	var following []baloot.Card
	for _, c := range hand {
		if c.EffectiveSuit(mode, trump) == leadSuit {
			following = append(following, c)
		}
	}
	if len(following) > 0 {
		return following
	}
	if mode == baloot.HOKUM {
		var trumps []baloot.Card
		for _, c := range hand {
			if c.IsTrump(mode, trump) {
				trumps = append(trumps, c)
			}
		}
		if len(trumps) > 0 {
			return trumps
		}
	}
	return hand
}

func removeCardFrom(hand []baloot.Card, c baloot.Card) []baloot.Card {
	return baloot.RemoveCard(hand, c)
}

// resolveTrick determines the winner and point value of a completed
// 4-card table. Beats is a strict order, so no tie-break is needed.
func resolveTrick(table []baloot.TableCard, mode baloot.Mode, trump baloot.Suit) (baloot.Position, int) {
	best := table[0]
	for _, tc := range table[1:] {
		if tc.Card.Beats(best.Card, mode, trump) {
			best = tc
		}
	}
	points := 0
	for _, tc := range table {
		points += tc.Card.Points(mode, trump)
	}
	return best.Seat, points
}

// search runs exhaustive minimax with alpha-beta pruning from state,
// returning the score differential (our team points minus theirs) a
// perfectly-played continuation achieves, from myTeam's perspective.
func search(s trickState, myTeam int, alpha, beta int, stats *Stats, finalBonus int) int {
	stats.Nodes++

	if len(s.table) == 4 {
		winner, points := resolveTrick(s.table, s.mode, s.trump)
		bonus := 0
		allEmpty := true
		for _, h := range s.hands {
			if len(h) > 0 {
				allEmpty = false
				break
			}
		}
		if allEmpty {
			bonus = finalBonus
		}
		sign := 1
		if winner.Team() != myTeam {
			sign = -1
		}
		next := s.clone()
		next.table = nil
		next.leader = winner
		next.toMove = winner
		gained := sign * (points + bonus)
		if allEmpty {
			return gained
		}
		// The rest of the search is scored relative to what this trick
		// already gained, so the window shifts by the same amount.
		return gained + search(next, myTeam, alpha-gained, beta-gained, stats, finalBonus)
	}

	hand := s.hands[s.toMove]
	if len(hand) == 0 {
		stats.Nodes++
		return 0
	}
	plays := legalPlays(hand, s.table, s.mode, s.trump)

	maximizing := s.toMove.Team() == myTeam

	best := alpha
	if !maximizing {
		best = beta
	}

	for _, c := range plays {
		next := s.clone()
		next.hands[s.toMove] = removeCardFrom(next.hands[s.toMove], c)
		next.table = append(next.table, baloot.TableCard{Seat: s.toMove, Card: c})
		next.toMove = s.toMove.Next()

		val := search(next, myTeam, alpha, beta, stats, finalBonus)

		if maximizing {
			if val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if val < best {
				best = val
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			stats.Prunes++
			break
		}
	}
	return best
}

// Solve runs the endgame solver when every player has at most
// maxBranchingCards cards left (spec.md §4.6). myHand and tableCards
// describe the trick in progress; knownOthers supplies any hands the
// host has determinized (e.g. in a perfect-information test harness or
// replay). Only fully determinized positions are searched: hidden hands
// are not enumerated and trk is not consulted, so if any other seat's
// hand is missing from knownOthers, or any hand exceeds
// maxBranchingCards, Overflowed is set and callers fall back to
// PlanMidGame. Among equally valued cards the first legal card in
// hand order is returned.
func Solve(myHand []baloot.Card, obs baloot.Observation, trk *tracker.Tracker, knownOthers map[baloot.Position][]baloot.Card) EndgameResult {
	if len(myHand) > maxBranchingCards {
		return EndgameResult{Overflowed: true}
	}

	hands := [4][]baloot.Card{}
	hands[obs.MyPosition] = myHand
	missing := false
	for _, p := range baloot.Positions {
		if p == obs.MyPosition {
			continue
		}
		if h, ok := knownOthers[p]; ok {
			hands[p] = h
			if len(h) > maxBranchingCards {
				return EndgameResult{Overflowed: true}
			}
		} else {
			missing = true
		}
	}
	if missing {
		// No fully determinized assignment available, and hidden hands
		// are not enumerated here, so no exhaustive search is possible.
		return EndgameResult{Overflowed: true}
	}

	leader := obs.MyPosition
	if !obs.IsLeading() {
		leader = obs.TableCards[0].Seat
	}

	state := trickState{
		hands:  hands,
		table:  append([]baloot.TableCard(nil), obs.TableCards...),
		leader: leader,
		toMove: nextToAct(obs),
		mode:   obs.Mode,
		trump:  obs.Trump,
	}

	finalBonus := 0
	totalRemaining := 0
	for _, h := range hands {
		totalRemaining += len(h)
	}
	if totalRemaining == 4*len(myHand) && len(myHand) > 0 {
		finalBonus = baloot.LastTrickBonus
	}

	plays := legalPlays(myHand, obs.TableCards, obs.Mode, obs.Trump)
	if len(plays) == 0 {
		return EndgameResult{Overflowed: true}
	}

	myTeam := obs.MyPosition.Team()
	bestCard := plays[0]
	bestVal := -1 << 30
	stats := Stats{}

	for _, c := range plays {
		next := state.clone()
		next.hands[obs.MyPosition] = removeCardFrom(next.hands[obs.MyPosition], c)
		next.table = append(next.table, baloot.TableCard{Seat: obs.MyPosition, Card: c})
		next.toMove = obs.MyPosition.Next()

		val := search(next, myTeam, -1<<30, 1<<30, &stats, finalBonus)
		if val > bestVal {
			bestVal = val
			bestCard = c
		}
	}

	return EndgameResult{
		CardIndex: indexOfCard(myHand, bestCard),
		Card:      bestCard,
		Diff:      bestVal,
		Stats:     stats,
	}
}

func nextToAct(obs baloot.Observation) baloot.Position {
	if obs.IsLeading() {
		return obs.MyPosition
	}
	return obs.TableCards[len(obs.TableCards)-1].Seat.Next()
}
