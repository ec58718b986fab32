// SPDX-License-Identifier: MPL-2.0

package generate

import "github.com/charmbracelet/log"

// Counter reports the progress of a phase, logging every hundredth step.
type Counter struct {
	total   int
	current int
}

// StartCounter logs the start of a phase and returns its counter.
func StartCounter(total int) *Counter {
	log.Info("start", "tasks", total)
	return &Counter{total: total}
}

// Increase accounts for one executed task.
func (c *Counter) Increase() {
	c.current++
	if c.current%100 == 0 || c.current == c.total {
		log.Info("progress",
			"percent", c.current*100/c.total,
			"executed", c.current,
			"total", c.total,
		)
	}
}

// Stop logs the end of the phase.
func (c *Counter) Stop() {
	log.Info("stop", "tasks", c.total)
}
