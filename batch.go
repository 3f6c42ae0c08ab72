package convexhull

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultWorkers is used by CreateAll when workers < 1.
const DefaultWorkers = 1

// CreateAll computes one hull per cluster, spreading the clusters over
// workers goroutines. Every computation owns its own state, so nothing is
// shared between workers.
//
// hulls[i] is the hull of clusters[i], or nil if that cluster failed. The
// returned error joins the failures, each naming its cluster index.
func CreateAll[V Vertex](clusters [][]V, cfg *Config, workers int) ([]*Hull[V], error) {
	workers = max(DefaultWorkers, workers)

	hulls := make([]*Hull[V], len(clusters))
	errs := make([]error, len(clusters))

	indices := make([]int, len(clusters))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		hull, err := Create(clusters[i], cfg)
		if err != nil {
			errs[i] = fmt.Errorf("cluster %d: %w", i, err)
			Logger().Warn("convexhull: cluster failed", "cluster", i, "error", err)
			return
		}
		hulls[i] = hull
	})

	return hulls, errors.Join(errs...)
}

// task splits data into one contiguous chunk per worker and waits for all
// of them.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
