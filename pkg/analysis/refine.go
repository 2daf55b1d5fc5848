package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomobius/pkg/mobius"
	"golang.org/x/sync/errgroup"
)

// Refinement is one step of a resolution study
type Refinement struct {
	N           int
	SurfaceArea float64
	EdgeLength  float64
	AreaDelta   float64 // change from the previous (coarser) step, NaN for the first
	EdgeDelta   float64
}

// Refine measures the strip described by base at every resolution in
// resolutions (base.N is ignored). Strips are built concurrently by at most
// workers goroutines; workers <= 0 means one per resolution. The result is
// sorted by N and carries the change relative to the previous step.
func Refine(ctx context.Context, base mobius.Params, resolutions []int, workers int) ([]Refinement, error) {
	steps := make([]Refinement, len(resolutions))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, n := range resolutions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			p.N = n
			s, err := mobius.New(p)
			if err != nil {
				return fmt.Errorf("resolution %d: %w", n, err)
			}

			steps[i] = Refinement{
				N:           n,
				SurfaceArea: s.SurfaceArea(),
				EdgeLength:  s.EdgeLength(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(steps, func(i, j int) bool {
		return steps[i].N < steps[j].N
	})

	for i := range steps {
		if i == 0 {
			steps[i].AreaDelta = math.NaN()
			steps[i].EdgeDelta = math.NaN()
			continue
		}
		steps[i].AreaDelta = steps[i].SurfaceArea - steps[i-1].SurfaceArea
		steps[i].EdgeDelta = steps[i].EdgeLength - steps[i-1].EdgeLength
	}

	return steps, nil
}

// Converging reports whether the magnitude of both deltas shrinks from
// step to step. Fewer than three steps cannot show a trend and report false.
func Converging(steps []Refinement) bool {
	if len(steps) < 3 {
		return false
	}
	for i := 2; i < len(steps); i++ {
		if math.Abs(steps[i].AreaDelta) >= math.Abs(steps[i-1].AreaDelta) {
			return false
		}
		if math.Abs(steps[i].EdgeDelta) >= math.Abs(steps[i-1].EdgeDelta) {
			return false
		}
	}
	return true
}
