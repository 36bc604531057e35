package repository

import (
	"errors"
	"fmt"
	"prisoners-dilemma/internal/engine"
	"prisoners-dilemma/internal/strategy"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// DefaultRoster lists the entrants in slot order. Slot 0 is the reference
// player every head-to-head record is measured against.
var DefaultRoster = []string{
	"dual-grudger-109",
	"consensus",
	"late-defector",
	"copy-kitten",
	"grudger-109",
	"tilt-recover-2",
	"tilt-recover-8",
	"dual-grudger-108",
	"streak-grudger",
	"sync",
	"parity",
	"profiler",
	"last-rounds-90",
	"tit-for-tat",
	"nice",
	"nasty",
	"random",
	"tolerant",
	"freaky",
}

type RosterRepository struct {
	builders map[string]engine.Factory
	logger   zerolog.Logger
}

func NewRosterRepository(coin strategy.Coin, logger zerolog.Logger) *RosterRepository {
	return &RosterRepository{
		builders: catalogue(coin),
		logger:   logger,
	}
}

func catalogue(coin strategy.Coin) map[string]engine.Factory {
	return map[string]engine.Factory{
		"nice":               func() engine.Strategy { return strategy.Nice{} },
		"nasty":              func() engine.Strategy { return strategy.Nasty{} },
		"random":             func() engine.Strategy { return strategy.NewRandom(coin) },
		"freaky":             func() engine.Strategy { return strategy.NewFreaky(coin) },
		"tolerant":           func() engine.Strategy { return strategy.Tolerant{} },
		"tit-for-tat":        func() engine.Strategy { return strategy.NewTitForTat(coin) },
		"suspicious-tft":     func() engine.Strategy { return strategy.NewSuspiciousTitForTat(coin) },
		"soft-majority":      func() engine.Strategy { return strategy.SoftMajority{} },
		"soft-majority-half": func() engine.Strategy { return strategy.SoftMajority{Halved: true} },
		"copy-cat":           func() engine.Strategy { return strategy.CopyCat{} },
		"copy-kitten":        func() engine.Strategy { return strategy.CopyKitten{} },
		"grudger-105":        func() engine.Strategy { return &strategy.Grudger{Endgame: 105} },
		"grudger-108":        func() engine.Strategy { return &strategy.Grudger{Endgame: 108} },
		"grudger-109":        func() engine.Strategy { return &strategy.Grudger{Endgame: 109} },
		"grudger-119":        func() engine.Strategy { return &strategy.Grudger{Endgame: 119} },
		"random-tilt":        func() engine.Strategy { return strategy.NewRandomTilt(119, coin) },
		"dual-grudger-108":   func() engine.Strategy { return &strategy.DualGrudger{Endgame: 108} },
		"dual-grudger-109":   func() engine.Strategy { return &strategy.DualGrudger{Endgame: 109} },
		"streak-grudger":     func() engine.Strategy { return &strategy.StreakGrudger{} },
		"tilt-recover-2":     func() engine.Strategy { return &strategy.TiltRecover{Recovery: 2} },
		"tilt-recover-8":     func() engine.Strategy { return &strategy.TiltRecover{Recovery: 8} },
		"balancer":           func() engine.Strategy { return &strategy.Balancer{} },
		"periodic-4":         func() engine.Strategy { return strategy.Periodic{Period: 4} },
		"periodic-6":         func() engine.Strategy { return strategy.Periodic{Period: 6} },
		"periodic-9":         func() engine.Strategy { return strategy.Periodic{Period: 9} },
		"periodic-12":        func() engine.Strategy { return strategy.Periodic{Period: 12} },
		"escalating":         func() engine.Strategy { return strategy.NewEscalating() },
		"contrarian":         func() engine.Strategy { return strategy.Contrarian{} },
		"last-rounds-90":     func() engine.Strategy { return strategy.LastRounds{Endgame: 90} },
		"consensus":          func() engine.Strategy { return strategy.Consensus{Endgame: 95} },
		"parity":             func() engine.Strategy { return strategy.Parity{Endgame: 109} },
		"sync":               func() engine.Strategy { return strategy.Sync{} },
		"profiler":           func() engine.Strategy { return strategy.NewProfiler(coin) },
		"late-defector":      func() engine.Strategy { return strategy.NewLateDefector(coin) },
	}
}

// Resolve maps names to roster entries in the given order. An empty list
// resolves to DefaultRoster.
func (r *RosterRepository) Resolve(names []string) ([]engine.Entry, error) {
	if len(names) == 0 {
		names = DefaultRoster
	}

	entries := make([]engine.Entry, 0, len(names))
	for slot, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		build, ok := r.builders[name]
		if !ok {
			r.logger.Error().Str("name", raw).Int("slot", slot).Msg("strategy not found")
			return nil, fmt.Errorf("failed to resolve slot %d %q: %w", slot, raw, ErrUnknownStrategy)
		}
		entries = append(entries, engine.Entry{Name: name, New: build})
	}

	r.logger.Debug().Int("roster_size", len(entries)).Str("reference", entries[0].Name).Msg("roster resolved")
	return entries, nil
}

// Available lists every registered strategy name in sorted order.
func (r *RosterRepository) Available() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
