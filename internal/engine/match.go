package engine

import (
	"errors"
	"fmt"

	"prisoners-dilemma/internal/domain"
)

var (
	ErrInvalidRounds = errors.New("rounds must be positive")
	ErrInvalidAction = errors.New("strategy returned an invalid action")
)

// SimulateMatch plays rounds rounds between a, b and c.
//
// a sees (own, b, c), b sees (own, c, a) and c sees (own, a, b); payoffs are
// looked up with the same rotation. A strategy returning anything other than
// Cooperate or Defect aborts the match.
func SimulateMatch(a, b, c Strategy, rounds int) (domain.MatchResult, error) {
	if rounds <= 0 {
		return domain.MatchResult{}, fmt.Errorf("failed to simulate match with %d rounds: %w", rounds, ErrInvalidRounds)
	}

	players := [3]Strategy{a, b, c}
	var hist [3]domain.History
	for p := range hist {
		hist[p] = make(domain.History, 0, rounds)
	}

	res := domain.MatchResult{Rounds: rounds}
	for i := 0; i < rounds; i++ {
		var played [3]domain.Action
		for p := 0; p < 3; p++ {
			o1, o2 := (p+1)%3, (p+2)%3
			act := players[p].SelectAction(i, view(hist[p]), view(hist[o1]), view(hist[o2]))
			if !act.Valid() {
				return domain.MatchResult{}, fmt.Errorf("participant %d round %d returned %d: %w", p, i, act, ErrInvalidAction)
			}
			played[p] = act
		}

		for p := 0; p < 3; p++ {
			res.Totals[p] += Payoff(played[p], played[(p+1)%3], played[(p+2)%3])
			hist[p] = append(hist[p], played[p])
		}
	}

	for p := 0; p < 3; p++ {
		res.Scores[p] = float64(res.Totals[p]) / float64(rounds)
	}
	res.Histories = hist
	return res, nil
}

// view clips capacity so a strategy appending to its argument cannot write into
// the engine's backing array.
func view(h domain.History) domain.History {
	return h[:len(h):len(h)]
}
