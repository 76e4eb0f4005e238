package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	collidetree "github.com/storyfeet/collide-tree"
	"github.com/storyfeet/collide-tree/rangelist"
)

type item = collidetree.Item[int, float64]

var (
	count   = flag.Int("n", 1000, "Number of items per run")
	runs    = flag.Int("runs", 5, "Runs per detector")
	seed    = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	imgPath = flag.String("image", "", "Write the last tree to this BMP file")
	imgSize = flag.Int("size", 1000, "Longer side of the BMP in pixels")
	verbose = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *runs < 1 {
		log.Fatal("collidebench: -runs must be at least 1")
	}

	rng := rand.New(rand.NewSource(*seed))
	cfg := rangelist.DefaultConfig()

	var list []item
	var tree []collidetree.Pair[int]
	var last *collidetree.Tree[int, float64, item]

	square := bench("square", func() int {
		sample := rangelist.Generate(rng, *count, cfg)
		found := 0
		collidetree.Naive[int, float64](sample, func(a, b item) { found++ })
		return found
	})
	treed := bench("tree", func() int {
		list = rangelist.Generate(rng, *count, cfg)
		last = collidetree.New[int, float64, item](cfg.Universe)
		f, pairs := collidetree.Collector[int, float64, item]()
		for _, it := range list {
			last.AddItem(it, f)
		}
		tree = *pairs
		return len(tree)
	})

	f, pairs := collidetree.Collector[int, float64, item]()
	collidetree.Naive[int, float64](list, f)
	naive := *pairs

	collidetree.SortPairs(tree)
	collidetree.SortPairs(naive)
	if !slices.Equal(tree, naive) {
		log.WithFields(log.Fields{
			"tree":  len(tree),
			"naive": len(naive),
			"seed":  *seed,
		}).Fatal("collidebench: tree and naive detectors disagree")
	}

	stats := last.Stats()
	log.WithFields(log.Fields{
		"nodes":      stats.Nodes,
		"depth":      stats.MaxDepth,
		"straddling": stats.Straddling,
		"strays":     stats.Strays,
	}).Info("collidebench: last tree")
	log.WithField("speedup", fmt.Sprintf("%.1fx", float64(square)/float64(treed))).Info("collidebench: done")

	if *imgPath != "" {
		if err := writeImage(*imgPath, last); err != nil {
			log.Fatal(err)
		}
	}
}

// bench runs f *runs times and logs the average. f returns the number of
// collisions it found; a run that finds none is suspicious and logged.
func bench(name string, f func() int) time.Duration {
	var total time.Duration
	for i := 0; i != *runs; i++ {
		start := time.Now()
		found := f()
		total += time.Since(start)
		if found == 0 {
			log.WithField("run", i).Warnf("collidebench: %s found no collisions", name)
		}
	}
	avg := total / time.Duration(*runs)
	log.WithFields(log.Fields{
		"detector": name,
		"runs":     *runs,
		"total":    total,
		"avg":      avg,
	}).Info("collidebench: ran detector")
	return avg
}

func writeImage(path string, t *collidetree.Tree[int, float64, item]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}
	defer f.Close()
	if err := t.Image(f, *imgSize); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return f.Close()
}
