package fx

import (
	"prisoners-dilemma/internal/config"
	"prisoners-dilemma/internal/logger"
	"prisoners-dilemma/internal/random"
	"prisoners-dilemma/internal/repository"
	"prisoners-dilemma/internal/service"
	"prisoners-dilemma/internal/strategy"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ProvideSource seeds the shared random source, drawing a fresh seed when
// TOURNAMENT_SEED is zero. The seed is logged so a run can be replayed.
func ProvideSource(cfg *config.Config, logger zerolog.Logger) (*random.Source, error) {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			logger.Error().Err(err).Msg("failed to generate seed")
			return nil, err
		}
	}
	logger.Info().Int64("seed", seed).Msg("random source seeded")
	return random.NewSource(seed), nil
}

func ProvideCoin(src *random.Source) strategy.Coin {
	return src
}

func ProvideLengthSampler(cfg *config.Config, src *random.Source) (service.LengthSampler, error) {
	lengths, err := service.NewUniformLength(cfg.MinRounds, cfg.MaxRounds, src)
	if err != nil {
		return nil, err
	}
	return lengths, nil
}

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(logger.New),
	fx.Provide(ProvideSource),
	fx.Provide(ProvideCoin),
	fx.Provide(ProvideLengthSampler),
	// repos
	fx.Provide(repository.NewRosterRepository),
	// svc
	fx.Provide(service.NewTournamentService),
)
