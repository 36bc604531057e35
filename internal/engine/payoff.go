package engine

import "prisoners-dilemma/internal/domain"

// payoff[x][y][z] is the payoff to the actor playing x when the other two play y and z.
var payoff = [2][2][2]int{
	{{6, 3}, {3, 0}},
	{{8, 5}, {5, 2}},
}

// Payoff returns the payoff to the first-listed actor. Callers score the other
// participants by rotating the arguments.
func Payoff(first, second, third domain.Action) int {
	return payoff[first][second][third]
}
