package service

import (
	"context"
	"errors"
	"fmt"
	"prisoners-dilemma/internal/constants"
	"prisoners-dilemma/internal/domain"
	"prisoners-dilemma/internal/engine"
	"prisoners-dilemma/internal/runctx"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPasses = errors.New("passes must be positive")
	ErrEmptyRoster   = errors.New("roster is empty")
)

type TournamentOptions struct {
	Passes  int
	Lengths LengthSampler

	// Workers bounds how many matches of a pass run at once. Results are
	// applied in triple order regardless.
	Workers int

	// Observer, when set, is called after each match has been applied.
	Observer func(domain.MatchEvent)
}

type TournamentService struct {
	logger zerolog.Logger
}

func NewTournamentService(logger zerolog.Logger) *TournamentService {
	return &TournamentService{logger: logger}
}

// Run plays every triple of roster opts.Passes times and accumulates per-slot
// totals and head-to-head records against constants.ReferenceSlot. Any match
// error aborts the whole run.
func (s *TournamentService) Run(ctx context.Context, roster []engine.Entry, opts TournamentOptions) (*domain.TournamentResult, error) {
	log := runctx.Logger(ctx, s.logger)

	if len(roster) == 0 {
		return nil, fmt.Errorf("failed to start tournament: %w", ErrEmptyRoster)
	}
	if opts.Passes <= 0 {
		return nil, fmt.Errorf("failed to start tournament with %d passes: %w", opts.Passes, ErrInvalidPasses)
	}
	if opts.Lengths == nil {
		return nil, fmt.Errorf("failed to start tournament: no match length sampler: %w", ErrInvalidLengthRange)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	triples := Triples(len(roster))
	result := &domain.TournamentResult{
		Passes:  opts.Passes,
		Totals:  make([]float64, len(roster)),
		Records: make([]domain.Record, len(roster)),
	}

	log.Info().
		Int("roster_size", len(roster)).
		Int("passes", opts.Passes).
		Int("triples_per_pass", len(triples)).
		Int("workers", workers).
		Msg("tournament starting")

	for pass := 0; pass < opts.Passes; pass++ {
		results, err := s.playPass(ctx, roster, triples, opts.Lengths, workers, pass)
		if err != nil {
			log.Error().Err(err).Int("pass", pass).Msg("tournament aborted")
			return nil, err
		}

		for idx, t := range triples {
			apply(result, t, results[idx])
			result.Matches++

			if opts.Observer != nil {
				id, err := gonanoid.New()
				if err != nil {
					return nil, fmt.Errorf("failed to generate match id: %w", err)
				}
				opts.Observer(domain.MatchEvent{
					ID:     id,
					Pass:   pass,
					Seq:    result.Matches,
					Slots:  t,
					Result: results[idx],
				})
			}
		}

		log.Debug().Int("pass", pass).Int("matches", result.Matches).Msg("pass completed")
	}

	log.Info().Int("matches", result.Matches).Msg("tournament completed")
	return result, nil
}

func (s *TournamentService) playPass(ctx context.Context, roster []engine.Entry, triples [][3]int, lengths LengthSampler, workers, pass int) ([]domain.MatchResult, error) {
	// Lengths are drawn up front, in triple order, so the sequence does not
	// depend on how the workers interleave.
	rounds := make([]int, len(triples))
	for i := range rounds {
		rounds[i] = lengths.Next()
	}

	results := make([]domain.MatchResult, len(triples))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, t := range triples {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := playTriple(roster, t, rounds[idx])
			if err != nil {
				return fmt.Errorf("failed to play pass %d triple %v: %w", pass, t, err)
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tournament interrupted in pass %d: %w", pass, err)
	}
	return results, nil
}

// playTriple builds fresh instances for every seat so no strategy state leaks
// between matches.
func playTriple(roster []engine.Entry, t [3]int, rounds int) (domain.MatchResult, error) {
	var seats [3]engine.Strategy
	for p, slot := range t {
		s, err := engine.Instantiate(roster, slot)
		if err != nil {
			return domain.MatchResult{}, err
		}
		seats[p] = s
	}
	return engine.SimulateMatch(seats[0], seats[1], seats[2], rounds)
}

// apply adds one match to the running totals. It runs on a single goroutine so
// the three contributions land together.
func apply(result *domain.TournamentResult, t [3]int, res domain.MatchResult) {
	for p, slot := range t {
		result.Totals[slot] += res.Scores[p]
	}
	recordAgainstReference(result.Records, t, res.Scores)
}

// recordAgainstReference updates the records of the two seats facing the first
// seat that holds the reference slot. Matches without the reference slot are
// not recorded.
func recordAgainstReference(records []domain.Record, t [3]int, scores [3]float64) {
	ref := -1
	for p, slot := range t {
		if slot == constants.ReferenceSlot {
			ref = p
			break
		}
	}
	if ref < 0 {
		return
	}

	for p, slot := range t {
		if p == ref {
			continue
		}
		rec := &records[slot]
		switch {
		case scores[p] < scores[ref]:
			rec.Losses++
		case scores[p] == scores[ref]:
			rec.Ties++
		}
		rec.Played++
	}
}
