package rangelist

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	collidetree "github.com/storyfeet/collide-tree"
)

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	items := Generate(rand.New(rand.NewSource(1)), 1000, cfg)
	require.Len(t, items, 1000)

	u := cfg.Universe
	for i, it := range items {
		require.Equal(t, i, it.ID())
		b := it.Bounds()
		require.GreaterOrEqual(t, b.X, u.X)
		require.Less(t, b.X, u.X+u.W)
		require.GreaterOrEqual(t, b.Y, u.Y)
		require.Less(t, b.Y, u.Y+u.H)
		require.GreaterOrEqual(t, b.W, 0.)
		require.Less(t, b.W, cfg.MaxW)
		require.GreaterOrEqual(t, b.H, 0.)
		require.Less(t, b.H, cfg.MaxH)
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 100, DefaultConfig())
	b := Generate(rand.New(rand.NewSource(7)), 100, DefaultConfig())
	require.Equal(t, a, b)
}

func TestInside(t *testing.T) {
	cfg := Config{
		Universe: collidetree.NewBoundingBox(-50., 20., 300., 100.),
		MaxW:     500,
		MaxH:     40,
	}
	items := Inside(rand.New(rand.NewSource(3)), 500, cfg)
	require.Len(t, items, 500)
	for _, it := range items {
		require.True(t, cfg.Universe.Contains(it.Bounds()), "%v", it.Bounds())
	}
}

// The 1000 item scenario from the package docs: tree and naive detection agree.
func TestTreeMatchesNaive(t *testing.T) {
	type item = collidetree.Item[int, float64]
	cfg := DefaultConfig()
	list := Generate(rand.New(rand.NewSource(1000)), 1000, cfg)

	f, naive := collidetree.Collector[int, float64, item]()
	collidetree.Naive[int, float64](list, f)

	tree := collidetree.New[int, float64, item](cfg.Universe)
	g, found := collidetree.Collector[int, float64, item]()
	for _, it := range list {
		tree.AddItem(it, g)
	}

	got := slices.Clone(*found)
	collidetree.SortPairs(got)
	require.NotEmpty(t, *naive)
	require.Equal(t, *naive, got)
}
