package catalog

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadAll builds the fixtures for ids concurrently. Entry i draws from its
// own source seeded with seed+i, so the result matches loading each id in
// turn with WithSeed(seed+i). Any WithSource in opts is overridden. The first
// failure cancels the remaining loads and is returned as is.
func (r *Registry) LoadAll(ctx context.Context, ids []ID, seed int64, opts ...Option) ([]*Fixture, error) {
	fixtures := make([]*Fixture, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := append(append([]Option(nil), opts...), WithSeed(seed+int64(i)))
			f, err := r.Load(id, local...)
			if err != nil {
				return err
			}
			fixtures[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// LoadAll builds fixtures from the default registry.
func LoadAll(ctx context.Context, ids []ID, seed int64, opts ...Option) ([]*Fixture, error) {
	return defaultRegistry.LoadAll(ctx, ids, seed, opts...)
}
