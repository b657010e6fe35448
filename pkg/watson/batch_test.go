package watson_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTranscription = errors.New("transcription failed")

func TestBatchExecutor_KeepsOrder(t *testing.T) {
	t.Parallel()

	operations := make([]watson.BatchOperation, 10)
	for i := range operations {
		delay := time.Duration(10-i) * time.Millisecond
		operations[i] = watson.BatchOperation{
			ID: fmt.Sprintf("op-%d", i),
			Run: func(ctx context.Context) (interface{}, error) {
				time.Sleep(delay)

				return i, nil
			},
		}
	}

	results := watson.NewBatchExecutor(3).Execute(context.Background(), operations)

	require.Len(t, results, 10)

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("op-%d", i), result.ID)
		assert.True(t, result.Success)
		assert.Equal(t, i, result.Data)
		assert.Positive(t, result.Duration)
	}

	assert.Empty(t, watson.Failed(results))
}

func TestBatchExecutor_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var running, peak int32

	operations := make([]watson.BatchOperation, 8)
	for i := range operations {
		operations[i] = watson.BatchOperation{
			ID: fmt.Sprint(i),
			Run: func(ctx context.Context) (interface{}, error) {
				current := atomic.AddInt32(&running, 1)
				defer atomic.AddInt32(&running, -1)

				for {
					observed := atomic.LoadInt32(&peak)
					if current <= observed || atomic.CompareAndSwapInt32(&peak, observed, current) {
						break
					}
				}

				time.Sleep(5 * time.Millisecond)

				return nil, nil
			},
		}
	}

	watson.NewBatchExecutor(2).Execute(context.Background(), operations)

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestBatchExecutor_FailuresAndCallbacks(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		reported []string
	)

	callback := func(result *watson.BatchResult) {
		mu.Lock()
		defer mu.Unlock()

		reported = append(reported, result.ID)
	}

	operations := []watson.BatchOperation{
		{ID: "ok", Run: func(ctx context.Context) (interface{}, error) { return "hello", nil }, Callback: callback},
		{ID: "bad", Run: func(ctx context.Context) (interface{}, error) { return nil, errTranscription }, Callback: callback},
		{ID: "empty", Callback: callback},
	}

	results := watson.NewBatchExecutor(0).Execute(context.Background(), operations)

	failed := watson.Failed(results)
	require.Len(t, failed, 2)
	require.ErrorIs(t, failed[0].Error, errTranscription)
	require.ErrorIs(t, failed[1].Error, watson.ErrMissingParameter)
	assert.ElementsMatch(t, []string{"ok", "bad", "empty"}, reported)
}

func TestBatchExecutor_Timeout(t *testing.T) {
	t.Parallel()

	executor := watson.NewBatchExecutor(1)
	executor.SetTimeout(10 * time.Millisecond)

	results := executor.Execute(context.Background(), []watson.BatchOperation{{
		ID: "slow",
		Run: func(ctx context.Context) (interface{}, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		},
	}})

	require.ErrorIs(t, results[0].Error, context.DeadlineExceeded)
}
