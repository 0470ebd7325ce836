// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fixedpool runs tasks on a fixed number of goroutines.
package fixedpool

import (
	"context"
	"errors"
	"sync"

	"github.com/z5labs/cfgschema/internal/try"
)

// Task is a unit of work run by Wait.
type Task func(context.Context) error

// Wait runs every task using at most size goroutines and blocks until all of
// them have returned. A size less than one runs one goroutine per task.
//
// Every task is run even when another fails. The context passed to the
// tasks is cancelled with the first failure as its cause. Panics are
// recovered as try.PanicError. All failures are returned joined,
// in the order the tasks were given.
func Wait(ctx context.Context, size int, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if size < 1 || size > len(tasks) {
		size = len(tasks)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	errs := make([]error, len(tasks))
	idx := make(chan int)

	var wg sync.WaitGroup
	for range size {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range idx {
				err := run(ctx, tasks[i])
				if err != nil {
					errs[i] = err
					cancel(err)
				}
			}
		}()
	}

	for i := range tasks {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return errors.Join(errs...)
}

func run(ctx context.Context, t Task) (err error) {
	defer try.Recover(&err)

	return t(ctx)
}
