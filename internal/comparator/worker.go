package comparator

import (
	"sync"
	"sync/atomic"

	"github.com/dtom7/image-compare/internal/regions"
)

// pairResult is the outcome of comparing one imagePair. Exactly one of
// Result and Err is set.
type pairResult struct {
	Pair   imagePair
	Result *Result
	Err    error
}

// worker is a goroutine that receives imagePairs, compares them, and sends
// every outcome to the results channel.
func worker(wg *sync.WaitGroup, jobs <-chan imagePair, results chan<- pairResult, cfg regions.Config, processed *int64) {
	defer wg.Done()
	for pair := range jobs {
		res, err := CompareFiles(pair.ExpectedPath, pair.ActualPath, cfg)
		results <- pairResult{Pair: pair, Result: res, Err: err}
		atomic.AddInt64(processed, 1)
	}
}
