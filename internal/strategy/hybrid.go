package strategy

import (
	"math"

	"prisoners-dilemma/internal/domain"
	"prisoners-dilemma/internal/engine"
)

// Consensus cooperates while everyone cooperated last round, otherwise
// defects if an opponent has ever defected. It defects after round Endgame.
type Consensus struct {
	Endgame int
}

func (c Consensus) SelectAction(n int, own, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if n > c.Endgame {
		return D
	}
	if own[n-1] == C && opp1[n-1] == C && opp2[n-1] == C {
		return C
	}
	if opp1.Defections() > 0 || opp2.Defections() > 0 {
		return D
	}
	return C
}

// Parity follows the opponents when they agree. When they split it plays
// tolerant on odd rounds and compares defection counts on even ones.
type Parity struct {
	Endgame int
}

func (p Parity) SelectAction(n int, own, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if n >= p.Endgame {
		return D
	}
	if opp1[n-1] == opp2[n-1] {
		return opp1[n-1]
	}
	if n%2 != 0 {
		return Tolerant{}.SelectAction(n, own, opp1, opp2)
	}
	mine := own.Defections()
	if mine >= opp1.Defections() && mine >= opp2.Defections() {
		return C
	}
	return D
}

// Sync plays tit-for-tat while the opponents move in lockstep and alternates
// when they do not. It cooperates for two rounds and defects on rounds 98 and 99.
type Sync struct{}

func (Sync) SelectAction(n int, own, opp1, opp2 domain.History) domain.Action {
	if n < 2 {
		return C
	}
	if n == 98 || n == 99 {
		return D
	}
	if opp1[n-1] == D && opp1[n-2] == D && opp2[n-1] == D && opp2[n-2] == D {
		return D
	}
	if opp1[n-1] == opp2[n-1] && opp1[n-2] == opp2[n-2] {
		return opp1[n-1]
	}
	if own[n-1] == D {
		return C
	}
	return D
}

// Profiler classifies its opponents as nasty or random and punishes both,
// keeps a running score comparison, and otherwise falls back to tit-for-tat.
type Profiler struct {
	coin             Coin
	mine, opp1, opp2 int
}

func NewProfiler(coin Coin) *Profiler {
	return &Profiler{coin: coin}
}

func (p *Profiler) SelectAction(n int, own, opp1, opp2 domain.History) domain.Action {
	if n < 2 {
		return C
	}
	if opp1[n-1] == D && opp1[n-2] == D && opp2[n-1] == D && opp2[n-2] == D {
		return D
	}
	if nasty(opp1) || nasty(opp2) {
		return D
	}
	if looksRandom(opp1) || looksRandom(opp2) {
		return D
	}

	// Only rounds that reach this point are tallied.
	p.mine += engine.Payoff(own[n-1], opp1[n-1], opp2[n-1])
	p.opp1 += engine.Payoff(opp1[n-1], opp2[n-1], own[n-1])
	p.opp2 += engine.Payoff(opp2[n-1], opp1[n-1], own[n-1])
	if p.mine < p.opp1 || p.mine < p.opp2 {
		return D
	}

	if p.coin.Float64() < 0.5 {
		return opp1[n-1]
	}
	return opp2[n-1]
}

func nasty(h domain.History) bool {
	return h.Defections() == len(h)
}

func looksRandom(h domain.History) bool {
	ratio := float64(h.Defections()) / float64(len(h))
	return math.Abs(ratio-0.5) < 0.025
}

// LateDefector cooperates with opponents that cooperate over 90% of the time,
// but defects once the match passes a randomly drawn round between 95 and 100.
// Against anyone less cooperative it defects.
type LateDefector struct {
	coin Coin
}

func NewLateDefector(coin Coin) *LateDefector {
	return &LateDefector{coin: coin}
}

func (l *LateDefector) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if coopPercent(opp1) > 90 && coopPercent(opp2) > 90 {
		if n > 90+int(l.coin.Float64()*6)+5 {
			return D
		}
		return C
	}
	return D
}

func coopPercent(h domain.History) float64 {
	return float64(len(h)-h.Defections()) / float64(len(h)) * 100
}
