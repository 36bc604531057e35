package main

import (
	"context"
	"errors"
	"io"
	"os"
	"prisoners-dilemma/internal/config"
	"prisoners-dilemma/internal/constants"
	"prisoners-dilemma/internal/domain"
	"prisoners-dilemma/internal/engine"
	fxmodules "prisoners-dilemma/internal/fx"
	"prisoners-dilemma/internal/report"
	"prisoners-dilemma/internal/repository"
	"prisoners-dilemma/internal/runctx"
	"prisoners-dilemma/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.StopTimeout(constants.ShutdownTimeout),
		fx.Invoke(runTournament),
	).Run()
}

func runTournament(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	tournamentSvc *service.TournamentService,
	rosterRepo *repository.RosterRepository,
	lengths service.LengthSampler,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				code := 0
				if err := play(ctx, os.Stdout, cfg, tournamentSvc, rosterRepo, lengths, logger); err != nil {
					logger.Error().Err(err).Msg("tournament failed")
					code = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error().Err(err).Msg("failed to request shutdown")
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				logger.Warn().Msg("tournament did not stop in time")
				return stopCtx.Err()
			}
		},
	})
}

func play(
	ctx context.Context,
	out io.Writer,
	cfg *config.Config,
	tournamentSvc *service.TournamentService,
	rosterRepo *repository.RosterRepository,
	lengths service.LengthSampler,
	logger zerolog.Logger,
) error {
	ctx, log := runctx.WithRunID(ctx, logger, cfg.RunID)

	roster, err := rosterRepo.Resolve(cfg.Roster)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownStrategy) {
			log.Info().Strs("available", rosterRepo.Available()).Msg("known strategies")
		}
		return err
	}

	log.Info().
		Int("passes", cfg.Passes).
		Int("min_rounds", cfg.MinRounds).
		Int("max_rounds", cfg.MaxRounds).
		Int("workers", cfg.Workers).
		Strs("roster", engine.Names(roster)).
		Msg("configuration loaded")

	result, err := tournamentSvc.Run(ctx, roster, service.TournamentOptions{
		Passes:   cfg.Passes,
		Lengths:  lengths,
		Workers:  cfg.Workers,
		Observer: progress(log, cfg.ProgressEvery),
	})
	if err != nil {
		return err
	}

	standings, err := service.Rank(result.Totals, result.Passes)
	if err != nil {
		return err
	}

	return report.Write(out, engine.Names(roster), standings, result.Records)
}

// progress logs every match at debug level and a running count every `every`
// matches. It returns nil when neither would print.
func progress(log zerolog.Logger, every int) func(domain.MatchEvent) {
	if every == 0 && log.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return func(e domain.MatchEvent) {
		log.Debug().
			Str("match_id", e.ID).
			Int("pass", e.Pass).
			Ints("slots", e.Slots[:]).
			Int("rounds", e.Result.Rounds).
			Floats64("scores", e.Result.Scores[:]).
			Msg("match played")
		if every > 0 && e.Seq%every == 0 {
			log.Info().Int("matches", e.Seq).Msg("progress")
		}
	}
}
