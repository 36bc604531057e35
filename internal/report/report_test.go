package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisoners-dilemma/internal/domain"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"nice", "nasty", "nice-2"}
	standings := []domain.Standing{
		{Slot: 1, Score: 50},
		{Slot: 0, Score: 45},
		{Slot: 2, Score: 45},
	}
	records := []domain.Record{
		{Ties: 4, Played: 4},
		{Played: 4},
		{Losses: 1, Ties: 2, Played: 4},
	}

	require.NoError(t, Write(&buf, names, standings, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Tournament Results", lines[0])
	assert.Regexp(t, `^1\.\s+nasty:\s+50\.0000 points\.$`, lines[1])
	assert.Regexp(t, `^2\.\s+nice:\s+45\.0000 points\.$`, lines[2])
	assert.Regexp(t, `^3\.\s+nice-2:\s+45\.0000 points\.$`, lines[3])
	assert.Empty(t, strings.TrimSpace(lines[4]))
	assert.Regexp(t, `^Player\s+Wins\s+Losses\s+Ties\s+Total Matches$`, lines[5])
	assert.Equal(t, []string{"nice", "0", "0", "4", "4"}, strings.Fields(lines[6]))
	assert.Equal(t, []string{"nasty", "4", "0", "0", "4"}, strings.Fields(lines[7]))
	assert.Equal(t, []string{"nice-2", "1", "1", "2", "4"}, strings.Fields(lines[8]))
}

func TestWrite_LengthMismatch(t *testing.T) {
	err := Write(&bytes.Buffer{}, []string{"a"}, nil, []domain.Record{{}})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_WriterError(t *testing.T) {
	err := Write(failingWriter{}, []string{"a"}, []domain.Standing{{Slot: 0, Score: 1}}, []domain.Record{{}})
	assert.ErrorContains(t, err, "disk full")
}
