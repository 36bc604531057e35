package domain

type Action uint8

const (
	Cooperate Action = iota
	Defect
)

func (a Action) Valid() bool {
	return a == Cooperate || a == Defect
}

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	default:
		return "?"
	}
}

// History holds one participant's actions within a match, index i being round i.
type History []Action

// Defections counts the Defect entries in h.
func (h History) Defections() int {
	n := 0
	for _, a := range h {
		if a == Defect {
			n++
		}
	}
	return n
}

func (h History) Last() (Action, bool) {
	if len(h) == 0 {
		return Cooperate, false
	}
	return h[len(h)-1], true
}

type MatchResult struct {
	Rounds    int
	Totals    [3]int     // summed per-round payoffs
	Scores    [3]float64 // Totals / Rounds
	Histories [3]History
}

// Record is a slot's head-to-head tally against the reference slot.
type Record struct {
	Losses int
	Ties   int
	Played int
}

func (r Record) Wins() int {
	return r.Played - r.Losses - r.Ties
}

type Standing struct {
	Slot  int
	Score float64
}

type TournamentResult struct {
	Passes  int
	Matches int
	Totals  []float64
	Records []Record
}

// MatchEvent is handed to progress observers after a match has been applied.
type MatchEvent struct {
	ID     string
	Pass   int
	Seq    int
	Slots  [3]int
	Result MatchResult
}
