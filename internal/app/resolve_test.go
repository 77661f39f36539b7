package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eca-explorer/internal/core"
	"eca-explorer/internal/elementary"
)

func fixedSize(cols, rows int) SizeFunc {
	return func() (int, int, error) { return cols, rows, nil }
}

func noTerminal() (int, int, error) { return 0, 0, errors.New("not a terminal") }

func TestResolveUsesTerminalSize(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = 30

	rc, initial, err := Resolve(cfg, fixedSize(80, 24), core.NewRNG(1))
	require.NoError(t, err)
	require.Len(t, initial, 80)
	require.Equal(t, 24, rc.Generations)
	require.Equal(t, uint8(30), rc.Table.Rule())
	require.Equal(t, elementary.Wrap, rc.Edges)
}

func TestResolveWideGlyphsHalveWidth(t *testing.T) {
	cfg := NewConfig()
	cfg.Glyphs = "wide"
	_, initial, err := Resolve(cfg, fixedSize(81, 24), core.NewRNG(1))
	require.NoError(t, err)
	require.Len(t, initial, 40)
}

func TestResolveSeededRowIsReproducible(t *testing.T) {
	cfg := NewConfig()
	_, a, err := Resolve(cfg, fixedSize(64, 10), core.NewRNG(42))
	require.NoError(t, err)
	_, b, err := Resolve(cfg, fixedSize(64, 10), core.NewRNG(42))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestResolveExplicitArgumentsSkipSizeQuery(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = 90
	cfg.Initial, cfg.HasInitial = "00001000", true
	cfg.Generations = 5

	rc, initial, err := Resolve(cfg, noTerminal, core.NewRNG(1))
	require.NoError(t, err)
	require.Equal(t, "00001000", initial.String())
	require.Equal(t, 5, rc.Generations)
}

func TestResolveTerminalSizeUnavailable(t *testing.T) {
	cfg := NewConfig()
	_, _, err := Resolve(cfg, noTerminal, core.NewRNG(1))
	require.ErrorIs(t, err, ErrTerminalSizeUnavailable)

	cfg.Initial, cfg.HasInitial = "0101", true
	_, _, err = Resolve(cfg, noTerminal, core.NewRNG(1))
	require.ErrorIs(t, err, ErrTerminalSizeUnavailable, "generation count still needs the height")
}

func TestResolveCountsSizeQueriesOnce(t *testing.T) {
	calls := 0
	size := func() (int, int, error) { calls++; return 10, 3, nil }
	_, _, err := Resolve(NewConfig(), size, core.NewRNG(1))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}
