package workloads

import "github.com/krishkuchroo/xv6-finalproject/internal/uthread"

const incrementsPerThread = 1000

// CounterRace spawns n threads that each increment a shared counter
// incrementsPerThread times with a read-yield-write critical section and no
// protection, deliberately reproducing the lost-update race. It returns the
// final counter value, which is expected (but not guaranteed) to fall short
// of n*incrementsPerThread. Grounded on
// original_source/user_threading_library_core/tests/mutex_test.c's
// test_without_mutex.
func CounterRace(rt *uthread.Runtime, n int) (int, error) {
	rt.Init()
	counter := 0

	tids := make([]uthread.Tid, 0, n)
	for i := 0; i < n; i++ {
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < incrementsPerThread; j++ {
				temp := counter
				rt.Yield()
				counter = temp + 1
			}
			return nil
		}, nil)
		if err != nil {
			return 0, err
		}
		tids = append(tids, tid)
	}

	for _, tid := range tids {
		if _, err := rt.Join(tid); err != nil {
			return 0, err
		}
	}
	return counter, nil
}

// CounterMutex is CounterRace's protected twin: the same critical section,
// now guarded by a Mutex, so the final counter is always exactly
// n*incrementsPerThread. Grounded on the same mutex_test.c's
// test_with_mutex.
func CounterMutex(rt *uthread.Runtime, n int) (int, error) {
	rt.Init()
	counter := 0
	mu := rt.NewMutex()

	tids := make([]uthread.Tid, 0, n)
	for i := 0; i < n; i++ {
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < incrementsPerThread; j++ {
				mu.Lock()
				temp := counter
				rt.Yield()
				counter = temp + 1
				mu.Unlock()
			}
			return nil
		}, nil)
		if err != nil {
			return 0, err
		}
		tids = append(tids, tid)
	}

	for _, tid := range tids {
		if _, err := rt.Join(tid); err != nil {
			return 0, err
		}
	}
	return counter, nil
}
