package services

import (
	"fmt"
	"sync"

	"housing-analyzer/models"
	"housing-analyzer/storage"
	"housing-analyzer/utils"
)

// Loader reads every configured source file and collects the raw records.
// Files are read concurrently on a worker pool, but Load only returns once
// all of them finish, so ingestion is always complete before the catalog
// builds its index.
type Loader struct {
	logger *utils.Logger
	pool   *utils.WorkerPool
}

// NewLoader creates a Loader with the given concurrency limit.
func NewLoader(logger *utils.Logger, maxConcurrency int) *Loader {
	return &Loader{
		logger: logger,
		pool:   utils.NewWorkerPool(maxConcurrency),
	}
}

// Load reads all paths and returns the combined records. A file that fails
// to parse fails the whole load; partial datasets would silently skew the
// aggregations.
func (ld *Loader) Load(paths []string) ([]*models.RawRecord, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("loader: no input files configured")
	}

	var (
		mu      sync.Mutex
		records []*models.RawRecord
		loadErr error
	)

	for _, path := range paths {
		p := path
		ld.pool.Submit(func() {
			recs, err := storage.NewCSVReader(p).ReadAll()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if loadErr == nil {
					loadErr = err
				}
				return
			}
			records = append(records, recs...)
			ld.logger.Info("[loader] %s — %d records", p, len(recs))
		})
	}
	ld.pool.Wait()

	if loadErr != nil {
		return nil, loadErr
	}

	ld.logger.Info("[loader] Loaded %d records from %d file(s)", len(records), len(paths))
	return records, nil
}
