// Package strategy holds the players entered in the tournament. Each type
// satisfies engine.Strategy; the engine never depends on a concrete one.
package strategy

import (
	"prisoners-dilemma/internal/domain"
)

// Coin is the randomness a strategy may draw on.
type Coin interface {
	Float64() float64
}

const (
	C = domain.Cooperate
	D = domain.Defect
)

// Nice always cooperates.
type Nice struct{}

func (Nice) SelectAction(int, domain.History, domain.History, domain.History) domain.Action {
	return C
}

// Nasty always defects.
type Nasty struct{}

func (Nasty) SelectAction(int, domain.History, domain.History, domain.History) domain.Action {
	return D
}

// Random flips a fair coin every round.
type Random struct {
	coin Coin
}

func NewRandom(coin Coin) *Random {
	return &Random{coin: coin}
}

func (r *Random) SelectAction(int, domain.History, domain.History, domain.History) domain.Action {
	if r.coin.Float64() < 0.5 {
		return C
	}
	return D
}

// Freaky decides once, at construction, whether to be nice or nasty for the
// whole match.
type Freaky struct {
	action domain.Action
}

func NewFreaky(coin Coin) *Freaky {
	if coin.Float64() < 0.5 {
		return &Freaky{action: C}
	}
	return &Freaky{action: D}
}

func (f *Freaky) SelectAction(int, domain.History, domain.History, domain.History) domain.Action {
	return f.action
}

// Tolerant defects only once more than half of the opponents' combined moves
// have been defections.
type Tolerant struct{}

func (Tolerant) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	defects := opp1.Defections() + opp2.Defections()
	if defects > 2*n-defects {
		return D
	}
	return C
}

// TitForTat copies the last move of an opponent picked at random each round.
type TitForTat struct {
	coin  Coin
	first domain.Action
}

func NewTitForTat(coin Coin) *TitForTat {
	return &TitForTat{coin: coin, first: C}
}

// NewSuspiciousTitForTat opens with a defection.
func NewSuspiciousTitForTat(coin Coin) *TitForTat {
	return &TitForTat{coin: coin, first: D}
}

func (t *TitForTat) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return t.first
	}
	if t.coin.Float64() < 0.5 {
		return opp1[n-1]
	}
	return opp2[n-1]
}

// SoftMajority defects while the opponents' cooperations are at least its own
// defection count. Halved compares half the opponents' cooperations instead.
type SoftMajority struct {
	Halved bool
}

func (s SoftMajority) SelectAction(n int, own, opp1, opp2 domain.History) domain.Action {
	coops := 2*n - opp1.Defections() - opp2.Defections()
	if s.Halved {
		coops /= 2
	}
	if coops >= own.Defections() {
		return D
	}
	return C
}

// CopyCat defects whenever either opponent defected last round.
type CopyCat struct{}

func (CopyCat) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	if opp1[n-1] == D || opp2[n-1] == D {
		return D
	}
	return C
}

// CopyKitten defects when the opponents defected at least twice across the
// last two rounds.
type CopyKitten struct{}

func (CopyKitten) SelectAction(n int, _, opp1, opp2 domain.History) domain.Action {
	if n == 0 {
		return C
	}
	from := max(n-2, 0)
	defects := opp1[from:n].Defections() + opp2[from:n].Defections()
	if defects >= 2 {
		return D
	}
	return C
}
