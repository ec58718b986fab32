// SPDX-License-Identifier: MPL-2.0

package workpool

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/charmbracelet/log"
)

const (
	// ThreadsEnvVar overrides the worker count, within [MinThreads, MaxThreads].
	ThreadsEnvVar = "PUMLGEN_THREADS"

	// MinThreads is the lowest accepted worker count.
	MinThreads = 1
	// MaxThreads is the highest accepted worker count.
	MaxThreads = 256
)

// Config controls how many workers a Pool spawns.
type Config struct {
	threads int
}

// NewConfig builds a configuration with an explicit worker count. Counts
// outside [MinThreads, MaxThreads] are a configuration error.
func NewConfig(threads int) (Config, error) {
	if threads < MinThreads || threads > MaxThreads {
		return Config{}, fmt.Errorf("workpool: thread count must be between %d and %d, got %d", MinThreads, MaxThreads, threads)
	}
	return Config{threads: threads}, nil
}

// DefaultConfig sizes the pool to the number of logical CPUs, capped at
// MaxThreads.
func DefaultConfig() Config {
	threads := runtime.NumCPU()
	if threads > MaxThreads {
		threads = MaxThreads
	}
	if threads < MinThreads {
		threads = MinThreads
	}
	return Config{threads: threads}
}

// ConfigFromEnv reads the worker count from ThreadsEnvVar. Unset, unparsable
// or out-of-range values fall back to DefaultConfig rather than failing the
// process.
func ConfigFromEnv() Config {
	raw, ok := os.LookupEnv(ThreadsEnvVar)
	if !ok {
		return DefaultConfig()
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("unable to parse the thread count, using the default", "var", ThreadsEnvVar, "value", raw)
		return DefaultConfig()
	}
	cfg, err := NewConfig(count)
	if err != nil {
		log.Warn("invalid thread count, using the default", "var", ThreadsEnvVar, "value", count)
		return DefaultConfig()
	}
	return cfg
}

// Threads returns the configured worker count.
func (c Config) Threads() int {
	return c.threads
}
