package strategy

import "prisoners-dilemma/internal/domain"

func eitherDefected(n int, opp1, opp2 domain.History) bool {
	return n > 0 && (opp1[n-1] == D || opp2[n-1] == D)
}

// Grudger cooperates until any opponent defects, then defects for the rest of
// the match. From round Endgame on it defects regardless.
type Grudger struct {
	Endgame  int
	defected bool
}

func (g *Grudger) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if g.defected {
		return D
	}
	if eitherDefected(n, opp1, opp2) {
		g.defected = true
		return D
	}
	if n > 0 && n >= g.Endgame {
		return D
	}
	return C
}

// RandomTilt is a Grudger that also tilts into permanent defection with
// probability 0.2 every round after the first.
type RandomTilt struct {
	Endgame  int
	coin     Coin
	defected bool
}

func NewRandomTilt(endgame int, coin Coin) *RandomTilt {
	return &RandomTilt{Endgame: endgame, coin: coin}
}

func (r *RandomTilt) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if r.defected {
		return D
	}
	if n < 1 {
		return C
	}
	if r.coin.Float64() > 0.8 || eitherDefected(n, opp1, opp2) {
		r.defected = true
		return D
	}
	if n >= r.Endgame {
		return D
	}
	return C
}

// DualGrudger holds a grudge against each opponent separately and defects
// once both have defected at least once, or from round Endgame on.
type DualGrudger struct {
	Endgame    int
	opp1Defect bool
	opp2Defect bool
}

func (g *DualGrudger) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	g.opp1Defect = g.opp1Defect || opp1[n-1] == D
	g.opp2Defect = g.opp2Defect || opp2[n-1] == D
	if (g.opp1Defect && g.opp2Defect) || n >= g.Endgame {
		return D
	}
	return C
}

// StreakGrudger turns permanently nasty when both opponents have defected at
// some point, or when either defects twice in a row.
type StreakGrudger struct {
	opp1Defect bool
	opp2Defect bool
	defected   bool
}

func (g *StreakGrudger) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if (g.opp1Defect && g.opp2Defect) || g.defected {
		return D
	}
	g.opp1Defect = g.opp1Defect || opp1[n-1] == D
	g.opp2Defect = g.opp2Defect || opp2[n-1] == D
	if n > 1 && ((opp1[n-1] == D && opp1[n-2] == D) || (opp2[n-1] == D && opp2[n-2] == D)) {
		g.defected = true
	}
	if (g.opp1Defect && g.opp2Defect) || g.defected {
		return D
	}
	return C
}

// TiltRecover answers a defection by defecting for Recovery rounds, then
// forgives.
type TiltRecover struct {
	Recovery int
	defected bool
	waited   int
}

func (t *TiltRecover) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if t.defected {
		t.waited++
		if t.waited < t.Recovery {
			return D
		}
		t.defected = false
	}
	if eitherDefected(n, opp1, opp2) {
		t.defected = true
		t.waited = 0
		return D
	}
	return C
}

// Balancer keeps a running balance, +1 per opponent cooperation and -1 per
// defection, and defects while it is negative.
type Balancer struct {
	balance int
}

func (b *Balancer) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	for _, h := range []domain.History{opp1, opp2} {
		if h[n-1] == D {
			b.balance--
		} else {
			b.balance++
		}
	}
	if b.balance < 0 {
		return D
	}
	return C
}

// Periodic defects every Period rounds and cooperates otherwise.
type Periodic struct {
	Period int
}

func (p Periodic) SelectAction(n int, _, _, _ domain.History) domain.Action {
	if n > 0 && n%p.Period == 0 {
		return D
	}
	return C
}

// Escalating defects on rounds divisible by a growing step, and resets the
// step whenever an opponent defects.
type Escalating struct {
	step int
}

func NewEscalating() *Escalating {
	return &Escalating{step: 1}
}

func (e *Escalating) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if eitherDefected(n, opp1, opp2) {
		e.step = 1
		return D
	}
	if n%e.step == 0 {
		e.step++
		return D
	}
	return C
}

// Contrarian opens with a defection and only cooperates right after both
// opponents defected.
type Contrarian struct{}

func (Contrarian) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n > 0 && opp1[n-1] == D && opp2[n-1] == D {
		return C
	}
	return D
}

// LastRounds cooperates unless both opponents defected last round, and
// defects unconditionally from round Endgame on.
type LastRounds struct {
	Endgame int
}

func (l LastRounds) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if n >= l.Endgame {
		return D
	}
	if opp1[n-1] == D && opp2[n-1] == D {
		return D
	}
	return C
}
