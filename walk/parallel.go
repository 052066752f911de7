package walk

import (
	"context"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/unitwalk/dimension"
)

// ConvertMany runs n independent random walks from q concurrently and
// returns the results in walk order. Each walk gets its own walker seeded
// from this walker's source, so a fixed seed still determines every result
// and no walk shares a random source with another.
//
// Parallelism is capped at runtime.NumCPU(). The first walk error cancels
// the remaining walks and is returned.
func (w *Walker) ConvertMany(ctx context.Context, q dimension.Quantity, n, maxRounds int) ([]dimension.Quantity, error) {
	// Seeds are drawn sequentially up front so concurrency cannot perturb
	// the derivation order.
	seeds := make([][2]uint64, n)
	for i := range seeds {
		seeds[i] = [2]uint64{w.rng.Uint64(), w.rng.Uint64()}
	}

	results := make([]dimension.Quantity, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sub := NewWalker(w.index,
				WithSource(rand.NewPCG(seeds[i][0], seeds[i][1])),
				WithLogger(w.logger),
			)
			result, err := sub.RandomConvert(q, maxRounds)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
