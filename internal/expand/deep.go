// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expand

import "context"

// deep re-queries set members in insertion order, including members added
// during the pass, until the set reaches MaxSize, every member has been
// queried, or MaxDeepQueries requests have been issued.
func (r *runner) deep(ctx context.Context) error {
	maxSize := r.opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	issued := 0
	for i := 0; i < r.set.Len(); i++ {
		if r.set.Len() >= maxSize {
			r.opts.Logger.Info().Int("size", r.set.Len()).Msg("deep expansion reached size cap")
			return nil
		}
		if r.opts.MaxDeepQueries > 0 && issued >= r.opts.MaxDeepQueries {
			r.opts.Logger.Info().Int("queries", issued).Msg("deep expansion reached query budget")
			return nil
		}

		// One planned query per member not yet visited.
		r.planned = r.res.Queries + r.set.Len() - i
		if err := r.query(ctx, r.set.At(i)); err != nil {
			return err
		}
		issued++
	}
	return nil
}
