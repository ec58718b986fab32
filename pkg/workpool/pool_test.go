// SPDX-License-Identifier: MPL-2.0

package workpool_test

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"pumlgen/pkg/workpool"
)

type testUnit struct {
	id       string
	fail     bool
	panics   bool
	executed *atomic.Int64
}

func (u *testUnit) Identifier() string { return u.id }

func (u *testUnit) Execute() error {
	if u.executed != nil {
		u.executed.Add(1)
	}
	if u.panics {
		panic("boom")
	}
	if u.fail {
		return fmt.Errorf("unit %s failed", u.id)
	}
	return nil
}

func TestExecuteEmpty(t *testing.T) {
	t.Parallel()

	pool := workpool.NewPool(workpool.Config{})
	if err := pool.Execute(nil); err != nil {
		t.Fatalf("Execute(nil) = %v, want nil", err)
	}
}

func TestExecuteAllSucceed(t *testing.T) {
	t.Parallel()

	cfg, err := workpool.NewConfig(4)
	if err != nil {
		t.Fatalf("NewConfig(4) error = %v", err)
	}
	var executed atomic.Int64
	units := make([]workpool.Unit, 0, 10)
	for i := 0; i < 10; i++ {
		units = append(units, &testUnit{id: fmt.Sprintf("unit%d", i), executed: &executed})
	}
	if err := workpool.NewPool(cfg).Execute(units); err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if got := executed.Load(); got != 10 {
		t.Errorf("executed %d units, want 10", got)
	}
}

func TestExecuteSingleFailure(t *testing.T) {
	t.Parallel()

	pool := workpool.NewPool(workpool.Config{})
	err := pool.Execute([]workpool.Unit{&testUnit{id: "unit1", fail: true}})
	var agg *workpool.AggregatedError
	if !errors.As(err, &agg) {
		t.Fatalf("Execute() = %v, want *AggregatedError", err)
	}
	if agg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", agg.Len())
	}
	if got := agg.First().UnitIdentifier; got != "unit1" {
		t.Errorf("First().UnitIdentifier = %q, want %q", got, "unit1")
	}
}

func TestExecuteCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	failing := map[int]bool{2: true, 5: true, 9: true}
	units := make([]workpool.Unit, 0, 10)
	for i := 0; i < 10; i++ {
		units = append(units, &testUnit{id: fmt.Sprintf("unit%d", i), fail: failing[i]})
	}
	cfg, err := workpool.NewConfig(3)
	if err != nil {
		t.Fatalf("NewConfig(3) error = %v", err)
	}
	execErr := workpool.NewPool(cfg).Execute(units)
	var agg *workpool.AggregatedError
	if !errors.As(execErr, &agg) {
		t.Fatalf("Execute() = %v, want *AggregatedError", execErr)
	}
	got := make([]string, 0, agg.Len())
	for _, e := range agg.Errors() {
		got = append(got, e.UnitIdentifier)
	}
	sort.Strings(got)
	want := []string{"unit2", "unit5", "unit9"}
	if len(got) != len(want) {
		t.Fatalf("failed units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("failed units = %v, want %v", got, want)
			break
		}
	}
}

func TestExecuteMoreWorkersThanUnits(t *testing.T) {
	t.Parallel()

	cfg, err := workpool.NewConfig(workpool.MaxThreads)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	var executed atomic.Int64
	units := []workpool.Unit{
		&testUnit{id: "a", executed: &executed},
		&testUnit{id: "b", executed: &executed},
	}
	if err := workpool.NewPool(cfg).Execute(units); err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if got := executed.Load(); got != 2 {
		t.Errorf("executed %d units, want 2", got)
	}
}

func TestExecuteRecoversPanic(t *testing.T) {
	t.Parallel()

	cfg, err := workpool.NewConfig(2)
	if err != nil {
		t.Fatalf("NewConfig(2) error = %v", err)
	}
	units := []workpool.Unit{
		&testUnit{id: "ok1"},
		&testUnit{id: "kaboom", panics: true},
		&testUnit{id: "ok2"},
	}
	execErr := workpool.NewPool(cfg).Execute(units)
	var agg *workpool.AggregatedError
	if !errors.As(execErr, &agg) {
		t.Fatalf("Execute() = %v, want *AggregatedError", execErr)
	}
	found := false
	for _, e := range agg.Errors() {
		if strings.HasPrefix(e.UnitIdentifier, "worker-") && strings.Contains(e.Message, "boom") {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors() = %v, want a worker-tagged panic error", agg.Errors())
	}
}

func TestNewConfigRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, threads := range []int{-1, 0, workpool.MaxThreads + 1} {
		if _, err := workpool.NewConfig(threads); err == nil {
			t.Errorf("NewConfig(%d) error = nil, want error", threads)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "16", want: 16},
		{name: "out of range", value: "300", want: workpool.DefaultConfig().Threads()},
		{name: "unparsable", value: "many", want: workpool.DefaultConfig().Threads()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(workpool.ThreadsEnvVar, tt.value)
			if got := workpool.ConfigFromEnv().Threads(); got != tt.want {
				t.Errorf("ConfigFromEnv().Threads() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAggregatedErrorEmptyPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewAggregatedError(nil) did not panic")
		}
	}()
	workpool.NewAggregatedError(nil)
}

func TestAggregatedErrorFormat(t *testing.T) {
	t.Parallel()

	single := workpool.NewAggregatedError([]workpool.ExecutionError{
		{UnitIdentifier: "unit1", Message: "failed"},
	})
	if got := single.Error(); got != "execution failed: [unit1] failed" {
		t.Errorf("Error() = %q", got)
	}

	multi := workpool.NewAggregatedError([]workpool.ExecutionError{
		{UnitIdentifier: "unit1", Message: "first"},
		{UnitIdentifier: "unit2", Message: "second"},
	})
	got := multi.Error()
	if !strings.Contains(got, "execution failed with 2 errors:") ||
		!strings.Contains(got, "[unit1] first") ||
		!strings.Contains(got, "[unit2] second") {
		t.Errorf("Error() = %q", got)
	}
}
