package watson

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/watson/internal/constants"
)

// BatchOperation is one independent service call of a batch.
type BatchOperation struct {
	ID       string
	Run      func(ctx context.Context) (interface{}, error)
	Callback func(result *BatchResult)
}

// BatchResult is the outcome of a BatchOperation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs batches of service calls with bounded concurrency.
// Results keep the order of the operations.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a batch executor. A concurrency of zero or less
// uses the default.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout of each operation.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs operations and waits for all of them. A failed operation does
// not stop the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := BatchResult{ID: operation.ID}

			if operation.Run == nil {
				result.Error = ErrMissingParameter
			} else {
				result.Data, result.Error = operation.Run(opCtx)
			}

			result.Success = result.Error == nil
			result.Duration = time.Since(start)
			results[index] = result

			if operation.Callback != nil {
				operation.Callback(&result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

// Failed returns the results that carry an error.
func Failed(results []BatchResult) []BatchResult {
	var failed []BatchResult

	for _, result := range results {
		if !result.Success {
			failed = append(failed, result)
		}
	}

	return failed
}
