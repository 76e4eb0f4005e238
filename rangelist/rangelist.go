// Package rangelist generates random items for exercising a collidetree.Tree.
package rangelist

import (
	"math/rand"

	collidetree "github.com/storyfeet/collide-tree"
)

// Config controls the size and placement of generated boxes.
type Config struct {
	// Universe bounds the origin of every generated box. Boxes may extend
	// past its far edges.
	Universe collidetree.BoundingBox[float64]
	// MaxW and MaxH bound the size of each box, exclusive.
	MaxW, MaxH float64
}

// DefaultConfig is a 1000x1000 universe with boxes up to 200 on a side.
func DefaultConfig() Config {
	return Config{
		Universe: collidetree.NewBoundingBox(0., 0., 1000., 1000.),
		MaxW:     200,
		MaxH:     200,
	}
}

// Generate returns n items with ids 0..n-1 and uniformly random bounds.
func Generate(rng *rand.Rand, n int, cfg Config) []collidetree.Item[int, float64] {
	u := cfg.Universe
	items := make([]collidetree.Item[int, float64], 0, n)
	for id := 0; id != n; id++ {
		box := collidetree.NewBoundingBox(
			u.X+rng.Float64()*u.W,
			u.Y+rng.Float64()*u.H,
			rng.Float64()*cfg.MaxW,
			rng.Float64()*cfg.MaxH,
		)
		items = append(items, collidetree.NewItem(id, box))
	}
	return items
}

// Inside is like Generate but keeps every box within the universe.
func Inside(rng *rand.Rand, n int, cfg Config) []collidetree.Item[int, float64] {
	u := cfg.Universe
	items := make([]collidetree.Item[int, float64], 0, n)
	for id := 0; id != n; id++ {
		w := rng.Float64() * min(cfg.MaxW, u.W)
		h := rng.Float64() * min(cfg.MaxH, u.H)
		box := collidetree.NewBoundingBox(
			u.X+rng.Float64()*(u.W-w),
			u.Y+rng.Float64()*(u.H-h),
			w,
			h,
		)
		items = append(items, collidetree.NewItem(id, box))
	}
	return items
}
