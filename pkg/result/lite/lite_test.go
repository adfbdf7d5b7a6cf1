package lite

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/core"
	"github.com/ib-77/result/pkg/result/mass"
)

func doubling(ctx context.Context, input result.Result[int, error]) <-chan result.Result[int, error] {
	output := make(chan result.Result[int, error], 1)
	go func() {
		defer close(output)
		output <- result.Map(input, func(v int) int { return v * 2 })
	}()
	return output
}

func collectSorted(t *testing.T, ch <-chan result.Result[int, error]) []int {
	t.Helper()
	var values []int
	for r := range ch {
		if r.IsFailure() {
			t.Errorf("unexpected failure: %v", r)
			continue
		}
		values = append(values, r.Unwrap())
	}
	sort.Ints(values)
	return values
}

func TestProcess_SingleWorker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	got := collectSorted(t, Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3, 4, 5}), doubling, 1))

	expected := []int{2, 4, 6, 8, 10}
	if len(got) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestProcess_MultipleWorkers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i + 1
	}

	var active, peak int32
	slow := func(ctx context.Context, input result.Result[int, error]) <-chan result.Result[int, error] {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return doubling(ctx, input)
	}

	got := collectSorted(t, Run(ctx, core.ToChanManyResults(ctx, input), slow, 5))
	if len(got) != len(input) {
		t.Fatalf("expected %d results, got %d", len(input), len(got))
	}
	if peak > 5 {
		t.Fatalf("expected at most 5 concurrent lines, got %d", peak)
	}
}

func TestProcess_LinesFromContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ctx = core.WithWorkerOptions(ctx, 3)

	got := collectSorted(t, Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3}), doubling, 0))
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got := collectSorted(t, Run(ctx, core.ToChanManyResults(ctx, []int{}), doubling, 2))
	if len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}

func TestTransform_TypeConversion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Turnout(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3}),
		Map(func(ctx context.Context, v int) string { return "n" + strconv.Itoa(v) }), 2)

	var got []string
	for r := range out {
		got = append(got, r.Unwrap())
	}
	sort.Strings(got)
	if len(got) != 3 || got[0] != "n1" || got[2] != "n3" {
		t.Fatalf("unexpected conversion output: %v", got)
	}
}

func TestValidate_InvalidInputs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3, 4}),
		Validate(func(ctx context.Context, in int) (bool, string) {
			return in%2 == 0, "odd value"
		}), 2)

	var valid, invalid int
	for r := range out {
		if r.IsSuccess() {
			valid++
		} else if r.UnwrapFailure().Error() == "odd value" {
			invalid++
		}
	}
	if valid != 2 || invalid != 2 {
		t.Fatalf("expected 2 valid and 2 invalid, got %d and %d", valid, invalid)
	}
}

func TestSwitchAndTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Turnout(ctx,
		Turnout(ctx, core.ToChanManyResults(ctx, []string{"1", "x", "3"}),
			Try(func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }), 2),
		Switch(func(ctx context.Context, v int) result.Result[int, error] {
			if v > 2 {
				return result.Failure[int](errors.New("too big"))
			}
			return result.Success[int, error](v)
		}), 2)

	var ok, failed int
	for r := range out {
		if r.IsSuccess() {
			ok++
		} else {
			failed++
		}
	}
	if ok != 1 || failed != 2 {
		t.Fatalf("expected 1 success and 2 failures, got %d and %d", ok, failed)
	}
}

func TestTee_SideEffect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var mu sync.Mutex
	seen := map[int]bool{}

	out := Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3}),
		Tee(func(ctx context.Context, r result.Result[int, error]) {
			mu.Lock()
			defer mu.Unlock()
			seen[r.Unwrap()] = true
		}), 3)
	got := collectSorted(t, out)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 || len(seen) != 3 {
		t.Fatalf("expected 3 passed-through values and 3 side effects, got %v and %v", got, seen)
	}
}

func TestFinally_WithErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Finally(ctx,
		Run(ctx, core.ToChanManyResults(ctx, []int{1, 2}),
			Validate(func(ctx context.Context, in int) (bool, string) { return in != 1, "one" }), 1),
		mass.FinallyHandlers[int, string]{
			OnSuccess: func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
			OnError:   func(ctx context.Context, err error) string { return "err:" + err.Error() },
		})

	got := core.FromChanMany(ctx, out)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "err:one" || got[1] != "val:2" {
		t.Fatalf("unexpected finally output: %v", got)
	}
}

func TestProcess_ContextCancellation_ProcessRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = core.WithProcessOptions(ctx, true)

	input := make([]int, 10)
	for i := range input {
		input[i] = i + 1
	}

	out := Run(ctx, core.ToChanManyResults(ctx, input),
		Switch(func(ctx context.Context, v int) result.Result[int, error] {
			if v == 2 {
				cancel()
			}
			return result.Success[int, error](v)
		}), 1)

	var all []result.Result[int, error]
	for r := range out {
		all = append(all, r)
	}

	if len(all) < 2 {
		t.Fatalf("expected the first item and the canceled one, got %v", all)
	}
	if !all[0].Contains(1) {
		t.Fatalf("expected Success(1) first, got %v", all[0])
	}
	for _, r := range all[1:] {
		if err, failed := r.FailureValue(); failed && !result.IsCancellation(err) {
			t.Fatalf("expected only cancellation failures, got %v", r)
		}
	}
}

func TestProcess_ContextCancellation_DropRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := make([]int, 10)
	for i := range input {
		input[i] = i + 1
	}

	out := Run(ctx, core.ToChanManyResults(ctx, input),
		Switch(func(ctx context.Context, v int) result.Result[int, error] {
			if v == 2 {
				cancel()
			}
			return result.Success[int, error](v)
		}), 1)

	count := 0
	for r := range out {
		if r.IsFailure() {
			t.Fatalf("expected no failures without process-remaining, got %v", r)
		}
		count++
	}
	if count > 2 {
		t.Fatalf("expected at most 2 results after cancel, got %d", count)
	}
}
