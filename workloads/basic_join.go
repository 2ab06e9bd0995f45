// Package workloads ports the conformance programs from the original
// threading library's examples/ and tests/ directories into runnable Go
// functions over a *uthread.Runtime, one per spec.md §8 scenario.
package workloads

import "github.com/krishkuchroo/xv6-finalproject/internal/uthread"

// BasicJoinResult reports what each spawned thread returned, in creation
// order, mirroring basic_thread_test.c's "Joined thread %d, return value"
// loop.
type BasicJoinResult struct {
	Tids    []uthread.Tid
	Retvals []int
}

// BasicJoin creates n threads that each yield a few times and return
// thread_num*100, then joins all of them in creation order. Grounded on
// original_source/user_threading_library_core/tests/basic_thread_test.c.
func BasicJoin(rt *uthread.Runtime, n int) (BasicJoinResult, error) {
	rt.Init()

	tids := make([]uthread.Tid, 0, n)
	for i := 1; i <= n; i++ {
		num := i
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < 3; j++ {
				rt.Yield()
			}
			return num * 100
		}, nil)
		if err != nil {
			return BasicJoinResult{}, err
		}
		tids = append(tids, tid)
	}

	rt.Yield()

	retvals := make([]int, 0, n)
	for _, tid := range tids {
		v, err := rt.Join(tid)
		if err != nil {
			return BasicJoinResult{}, err
		}
		retvals = append(retvals, v.(int))
	}

	return BasicJoinResult{Tids: tids, Retvals: retvals}, nil
}
