package service

import (
	"fmt"

	"prisoners-dilemma/internal/domain"
)

// Rank orders slots by totals[slot]/passes, highest first. A slot is placed
// after every slot already ranked with a score that is not lower, so equal
// scores keep ascending slot order.
func Rank(totals []float64, passes int) ([]domain.Standing, error) {
	if passes <= 0 {
		return nil, fmt.Errorf("failed to rank %d passes: %w", passes, ErrInvalidPasses)
	}

	order := make([]int, 0, len(totals))
	for slot := range totals {
		j := len(order) - 1
		order = append(order, slot)
		for ; j >= 0 && totals[slot] > totals[order[j]]; j-- {
			order[j+1] = order[j]
		}
		order[j+1] = slot
	}

	standings := make([]domain.Standing, len(order))
	for i, slot := range order {
		standings[i] = domain.Standing{Slot: slot, Score: totals[slot] / float64(passes)}
	}
	return standings, nil
}
