// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fixedpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/z5labs/cfgschema/internal/try"

	"github.com/stretchr/testify/assert"
)

func TestWait(t *testing.T) {
	t.Run("will return nil", func(t *testing.T) {
		t.Run("if there are no tasks", func(t *testing.T) {
			err := Wait(context.Background(), 2)
			if !assert.Nil(t, err) {
				return
			}
		})

		t.Run("if every task succeeds", func(t *testing.T) {
			var counter atomic.Int32
			tasks := make([]Task, 10)
			for i := range tasks {
				tasks[i] = func(ctx context.Context) error {
					counter.Add(1)
					return nil
				}
			}

			err := Wait(context.Background(), 3, tasks...)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, int32(10), counter.Load()) {
				return
			}
		})
	})

	t.Run("will not exceed the pool size", func(t *testing.T) {
		t.Run("if there are more tasks than goroutines", func(t *testing.T) {
			var running, peak atomic.Int32
			tasks := make([]Task, 20)
			for i := range tasks {
				tasks[i] = func(ctx context.Context) error {
					n := running.Add(1)
					defer running.Add(-1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					return nil
				}
			}

			err := Wait(context.Background(), 2, tasks...)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.LessOrEqual(t, peak.Load(), int32(2)) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if any task fails", func(t *testing.T) {
			errA := errors.New("a")
			errB := errors.New("b")
			var counter atomic.Int32

			err := Wait(
				context.Background(),
				1,
				func(ctx context.Context) error {
					counter.Add(1)
					return errA
				},
				func(ctx context.Context) error {
					counter.Add(1)
					return nil
				},
				func(ctx context.Context) error {
					counter.Add(1)
					return errB
				},
			)
			if !assert.ErrorIs(t, err, errA) {
				return
			}
			if !assert.ErrorIs(t, err, errB) {
				return
			}
			if !assert.Equal(t, int32(3), counter.Load()) {
				return
			}
		})

		t.Run("if a task panics", func(t *testing.T) {
			err := Wait(context.Background(), 0, func(ctx context.Context) error {
				panic("boom")
			})

			var perr try.PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "boom", perr.Value) {
				return
			}
		})
	})

	t.Run("will cancel the task context", func(t *testing.T) {
		t.Run("after the first failure", func(t *testing.T) {
			failErr := errors.New("failed")

			err := Wait(
				context.Background(),
				1,
				func(ctx context.Context) error {
					return failErr
				},
				func(ctx context.Context) error {
					<-ctx.Done()
					return context.Cause(ctx)
				},
			)
			if !assert.ErrorIs(t, err, failErr) {
				return
			}
		})
	})
}
