package analyzer

import (
	"context"
	"sync"

	"go-wallpaper-brightness/internal/logger"
	"go-wallpaper-brightness/pkg/models"
)

// ProgressFunc receives the completion percentage, in [0,100], after each
// finished item. Percentages are non-decreasing; ties occur when many items
// map to the same percent.
type ProgressFunc func(percent int)

// AnalyzeBatch analyzes the given image files concurrently and returns a
// path→result map holding only the paths that analyzed successfully; failed
// paths are silently omitted. Cancellation via ctx is cooperative: in-flight
// analyses run to completion, but nothing new is dispatched once ctx is done.
// progress may be nil.
func AnalyzeBatch(ctx context.Context, paths []string, progress ProgressFunc) map[string]models.AnalysisResult {
	return AnalyzeBatchWithOptions(ctx, paths, progress, DefaultOptions())
}

// AnalyzeBatchWithOptions is AnalyzeBatch with explicit options.
func AnalyzeBatchWithOptions(ctx context.Context, paths []string, progress ProgressFunc, opts AnalysisOptions) map[string]models.AnalysisResult {
	results := make(map[string]models.AnalysisResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	pool := NewWorkerPool(opts.MaxWorkers)
	pool.Start()
	defer pool.Close()

	var mu sync.Mutex
	completed := 0
	total := len(paths)

	for _, path := range paths {
		if ctx != nil && ctx.Err() != nil {
			logger.WithField("dispatched", completed).Debug("batch analysis cancelled")
			break
		}

		path := path
		pool.Submit(func() {
			result, ok := AnalyzeWithOptions(path, opts)

			// Failed paths still advance progress: the item is done, it just
			// contributed nothing to the map. Reporting under the lock keeps
			// the percentages an observer sees non-decreasing.
			mu.Lock()
			if ok {
				results[path] = result
			}
			completed++
			if progress != nil {
				progress(completed * 100 / total)
			}
			mu.Unlock()
		})
	}

	pool.Wait()
	return results
}
