// Package glitch implements the transform at the heart of prismsort:
// rotate an image, partition every sorting line into randomized bands,
// sort the pixels inside each band by brightness, undo the rotation
// and resize. Each variant runs on its own random stream, so results
// differ between runs unless a seed is pinned.
package glitch

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/AnyUserName/prismsort-cli/internal/hasher"
)

// Variant is one finished output buffer together with the seed that
// produced it. Re-running with the same seed reproduces it exactly.
type Variant struct {
	Image *image.NRGBA
	Seed  uint64
	Index int
}

// Config holds everything a pipeline run needs besides the source
// image.
type Config struct {
	Params Params
	// SourceName feeds seed derivation, typically the input path.
	SourceName string
	// BaseSeed pins the random streams for reproducible output.
	// 0 means fresh entropy per run.
	BaseSeed uint64
	// Workers caps concurrent variants (0 = NumCPU).
	Workers int
	Logger  *log.Logger
}

// Pipeline runs the glitch transform over one source buffer.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Pipeline{cfg: cfg}
}

// Run produces Count independent variants of src. The source is only
// ever read; every variant works on its own copy with its own random
// stream, so variants run concurrently. Any failure aborts the whole
// batch: the errors here are deterministic, so the remaining variants
// would fail the same way.
func (p *Pipeline) Run(src image.Image) ([]Variant, error) {
	params := p.cfg.Params
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &BufferError{Stage: "input", Reason: "zero-area source buffer"}
	}
	base := imaging.Clone(src)

	entropy := uint64(time.Now().UnixNano())
	variants := make([]Variant, params.Count)
	errs := make([]error, params.Count)

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i := 0; i < params.Count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			seed := p.seedFor(idx, entropy)
			p.cfg.Logger.Debug("rendering variant", "index", idx, "seed", seed)

			img, err := runVariant(base, params, seed)
			if err != nil {
				errs[idx] = fmt.Errorf("variant %d: %w", idx, err)
				return
			}
			variants[idx] = Variant{Image: img, Seed: seed, Index: idx}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return variants, nil
}

func (p *Pipeline) seedFor(idx int, entropy uint64) uint64 {
	if p.cfg.BaseSeed != 0 {
		// A pinned seed is variant 0's stream seed as-is, so any seed
		// recorded in a run report re-renders that exact variant when
		// fed back through BaseSeed. Higher indices derive from it.
		if idx == 0 {
			return p.cfg.BaseSeed
		}
		return hasher.VariantSeed(p.cfg.SourceName, idx, p.cfg.BaseSeed)
	}
	return hasher.VariantSeed(p.cfg.SourceName, idx, entropy)
}

// runVariant executes the full stage chain for one variant: rotate,
// partition and sort every column of the rotated canvas, compose back
// to the original frame, resize.
func runVariant(src *image.NRGBA, params Params, seed uint64) (*image.NRGBA, error) {
	rng := rand.New(rand.NewSource(int64(seed)))

	rot, tr, err := rotateForward(src, params.Angle)
	if err != nil {
		return nil, err
	}

	rb := rot.Bounds()
	w, h := rb.Dx(), rb.Dy()
	line := make([]color.NRGBA, h)
	keys := make([]float64, h)
	for x := 0; x < w; x++ {
		readColumn(rot, x, line)
		bands := partitionLine(h, params.Blocks, params.Intensity, rng)
		sortLine(line, keys, bands, params.Dither, rng)
		writeColumn(rot, x, line)
	}

	out, err := compose(rot, tr, params.FuzzyEdges, params.Blocks)
	if err != nil {
		return nil, err
	}
	return resizeOutput(out, params.ResizeFactor)
}
