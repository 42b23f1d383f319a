package core

import "golang.org/x/sync/errgroup"

// DefaultWorkers is the worker pool size used when a caller passes <= 0.
const DefaultWorkers = 7

// Partition splits cells into workers+1 contiguous chunks. The first workers
// chunks run concurrently; the caller runs the last chunk, which also absorbs
// the remainder. Partition returns only after every chunk has finished. fn
// receives the global index of chunk[0] and must touch nothing outside chunk.
func Partition[T any](cells []T, workers int, fn func(base int, chunk []T)) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	stride := len(cells) / (workers + 1)
	if stride == 0 {
		fn(0, cells)
		return
	}

	var g errgroup.Group
	defer g.Wait()
	for w := 0; w < workers; w++ {
		lo, hi := w*stride, (w+1)*stride
		g.Go(func() error {
			fn(lo, cells[lo:hi:hi])
			return nil
		})
	}
	lo := workers * stride
	fn(lo, cells[lo:])
}
