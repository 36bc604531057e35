package engine

import (
	"errors"
	"fmt"

	"prisoners-dilemma/internal/domain"
)

var ErrSlotOutOfRange = errors.New("roster slot out of range")

// Strategy picks the next action from the round index and the histories so far.
// The two opponent histories arrive in a fixed rotation, so a strategy never
// needs to know which seat it occupies. Histories must be treated as read-only.
type Strategy interface {
	SelectAction(round int, own, opp1, opp2 domain.History) domain.Action
}

// Factory builds a fresh strategy instance. Instances are never reused across matches.
type Factory func() Strategy

type Entry struct {
	Name string
	New  Factory
}

func Instantiate(roster []Entry, slot int) (Strategy, error) {
	if slot < 0 || slot >= len(roster) {
		return nil, fmt.Errorf("failed to instantiate slot %d of %d: %w", slot, len(roster), ErrSlotOutOfRange)
	}
	return roster[slot].New(), nil
}

func Names(roster []Entry) []string {
	names := make([]string, len(roster))
	for i, e := range roster {
		names[i] = e.Name
	}
	return names
}
