package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisoners-dilemma/internal/config"
	"prisoners-dilemma/internal/domain"
	"prisoners-dilemma/internal/random"
	"prisoners-dilemma/internal/repository"
	"prisoners-dilemma/internal/service"
)

func TestPlay_WritesReport(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{
		Passes:  2,
		Workers: 2,
		Roster:  []string{"nice", "nasty", "tit-for-tat"},
		RunID:   "test-run",
	}
	rosterRepo := repository.NewRosterRepository(random.NewSource(7), logger)
	svc := service.NewTournamentService(logger)

	var out bytes.Buffer
	err := play(context.Background(), &out, cfg, svc, rosterRepo, service.FixedLength(10), logger)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+3+1+1+3)
	assert.Equal(t, "Tournament Results", lines[0])
	for i, prefix := range []string{"1.", "2.", "3."} {
		assert.True(t, strings.HasPrefix(lines[1+i], prefix), lines[1+i])
		assert.Contains(t, lines[1+i], "points.")
	}
	assert.Empty(t, strings.TrimSpace(lines[4]))
	assert.Contains(t, lines[5], "Total Matches")
	assert.True(t, strings.HasPrefix(lines[6], "nice"))
	assert.True(t, strings.HasPrefix(lines[7], "nasty"))
	assert.True(t, strings.HasPrefix(lines[8], "tit-for-tat"))
}

func TestPlay_UnknownStrategy(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{Passes: 1, Workers: 1, Roster: []string{"nice", "mystery"}}
	rosterRepo := repository.NewRosterRepository(random.NewSource(1), logger)

	var out bytes.Buffer
	err := play(context.Background(), &out, cfg, service.NewTournamentService(logger), rosterRepo, service.FixedLength(5), logger)
	assert.ErrorIs(t, err, repository.ErrUnknownStrategy)
	assert.Zero(t, out.Len())
}

func TestPlay_Cancelled(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{Passes: 3, Workers: 1, Roster: []string{"nice", "nasty"}}
	rosterRepo := repository.NewRosterRepository(random.NewSource(1), logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := play(ctx, &out, cfg, service.NewTournamentService(logger), rosterRepo, service.FixedLength(5), logger)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestProgress(t *testing.T) {
	t.Run("silent", func(t *testing.T) {
		log := zerolog.New(&bytes.Buffer{}).Level(zerolog.InfoLevel)
		assert.Nil(t, progress(log, 0))
	})

	t.Run("periodic", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.InfoLevel)
		observe := progress(log, 2)
		require.NotNil(t, observe)

		for seq := 1; seq <= 5; seq++ {
			observe(domain.MatchEvent{Seq: seq})
		}
		assert.Equal(t, 2, strings.Count(buf.String(), `"message":"progress"`))
		assert.NotContains(t, buf.String(), "match played")
	})

	t.Run("debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.DebugLevel)
		observe := progress(log, 0)
		require.NotNil(t, observe)

		observe(domain.MatchEvent{ID: "abc", Seq: 1, Slots: [3]int{0, 1, 2}})
		assert.Contains(t, buf.String(), `"match_id":"abc"`)
		assert.NotContains(t, buf.String(), `"message":"progress"`)
	})
}
