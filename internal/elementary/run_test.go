package elementary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunYieldsExactGenerationCount(t *testing.T) {
	run, err := NewRun(mustRow(t, "00001000"), RunConfig{
		Table:       mustTable(t, 90),
		Edges:       Wrap,
		Generations: 5,
	})
	require.NoError(t, err)
	require.Equal(t, 5, run.Total())

	var rows []string
	for run.Next() {
		require.Equal(t, len(rows), run.Generation())
		require.Len(t, run.Row(), 8)
		rows = append(rows, run.Row().String())
	}
	require.NoError(t, run.Err())
	require.Equal(t, []string{
		"00001000",
		"00010100",
		"00100010",
		"01010101",
		"00000000",
	}, rows)
	require.False(t, run.Next(), "a finished run stays finished")
}

func TestRunRowsAreNotAliased(t *testing.T) {
	initial := mustRow(t, "0101")
	run, err := NewRun(initial, RunConfig{Table: mustTable(t, 255), Edges: Crop, Generations: 2})
	require.NoError(t, err)

	require.True(t, run.Next())
	first := run.Row()
	require.True(t, run.Next())
	require.Equal(t, "0101", first.String())
	require.Equal(t, "1111", run.Row().String())

	first[0] = 1
	require.Equal(t, "0101", initial.String(), "run must copy its initial row")
}

func TestRunAll(t *testing.T) {
	run, err := NewRun(mustRow(t, "1"), RunConfig{Table: mustTable(t, 0), Edges: Copy, Generations: 3})
	require.NoError(t, err)
	n := 0
	for row := range run.All() {
		require.Len(t, row, 1)
		n++
	}
	require.Equal(t, 3, n)
}

func TestNewRunValidation(t *testing.T) {
	_, err := NewRun(Row{}, RunConfig{Generations: 1})
	require.ErrorIs(t, err, ErrEmptyRow)

	_, err = NewRun(Row{1}, RunConfig{Generations: UntilScreenFull})
	require.ErrorIs(t, err, ErrInvalidGenerations)
}
