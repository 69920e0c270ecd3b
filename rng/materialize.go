package rng

import "golang.org/x/sync/errgroup"

// complete turns the partial mapping produced by the scan into a dense
// slice with an entry for every index in [0, n). Indices absent from
// partial get an empty, non-nil Entry.
//
// The work is split into contiguous index chunks, one goroutine each.
// Workers only read partial and only write their own slots, so the order in
// which chunks finish has no effect on the result.
//
// Complexity: O(n) time, O(n) space.
func complete(n int, partial map[int]Entry, workers int) []Entry {
	out := make([]Entry, n)
	if n == 0 {
		return out
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if e, ok := partial[i]; ok {
					out[i] = e
					continue
				}
				out[i] = Entry{}
			}
			return nil
		})
	}
	_ = eg.Wait()

	return out
}
