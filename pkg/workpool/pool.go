// SPDX-License-Identifier: MPL-2.0

package workpool

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Unit is an independent, goroutine-transferable job.
type Unit interface {
	// Identifier names the unit for logging and error reporting.
	Identifier() string
	// Execute performs the work. A non-nil error marks the unit as failed
	// without stopping the rest of the pool.
	Execute() error
}

// Pool executes units of work over a fixed set of workers.
type Pool struct {
	config Config
}

// NewPool builds a pool from the given configuration. The zero-value Config
// falls back to DefaultConfig.
func NewPool(config Config) *Pool {
	if config.threads == 0 {
		config = DefaultConfig()
	}
	log.Debug("creating the worker pool", "threads", config.threads)
	return &Pool{config: config}
}

// Execute runs every unit and waits for all workers to finish. An empty input
// succeeds immediately without spawning a worker. The effective worker count
// is the lesser of the configured thread count and the number of units.
//
// Failures are aggregated: every unit runs regardless of earlier errors, and
// the returned error, when non-nil, is an *AggregatedError listing each
// failed unit. Worker panics are recovered and reported under a worker
// identifier since the failing unit may be unknown at that point.
func (p *Pool) Execute(units []Unit) error {
	if len(units) == 0 {
		return nil
	}

	workers := p.config.threads
	if len(units) < workers {
		workers = len(units)
	}
	log.Debug("executing work units", "units", len(units), "workers", workers)

	// The queue is fully loaded and closed before the workers start so a
	// worker lost to a panic can never strand unsent units.
	queue := make(chan Unit, len(units))
	for _, unit := range units {
		queue <- unit
	}
	close(queue)

	results := make(chan ExecutionError, len(units)+workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results <- ExecutionError{
						UnitIdentifier: fmt.Sprintf("worker-%d", worker),
						Message:        fmt.Sprintf("panic: %v", r),
					}
				}
			}()
			for unit := range queue {
				if err := unit.Execute(); err != nil {
					log.Error("work unit failed", "unit", unit.Identifier(), "error", err)
					results <- ExecutionError{
						UnitIdentifier: unit.Identifier(),
						Message:        err.Error(),
					}
					continue
				}
				log.Debug("work unit completed", "unit", unit.Identifier())
			}
		}(i)
	}

	wg.Wait()
	close(results)

	var errors []ExecutionError
	for err := range results {
		errors = append(errors, err)
	}
	if len(errors) > 0 {
		return NewAggregatedError(errors)
	}
	return nil
}
