package annotate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachChrom runs fn for every chromosome. Chromosome sweeps share no
// mutable state (each writes a disjoint range of the output), so they run on
// a bounded worker group; the result is identical to sequential execution
// because output slots are addressed by original peak index, not by
// completion order.
func (a *Annotator) forEachChrom(chroms []string, fn func(chrom string)) {
	workers := a.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers == 1 || len(chroms) <= 1 {
		for _, chrom := range chroms {
			fn(chrom)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, chrom := range chroms {
		g.Go(func() error {
			fn(chrom)
			return nil
		})
	}
	// Workers cannot fail; Wait is only a join point.
	_ = g.Wait()
}
