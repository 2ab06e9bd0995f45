package uthread

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexExcludesConcurrentCriticalSections(t *testing.T) {
	rt := newTestRuntime()
	mu := rt.NewMutex()
	counter := 0
	const threads, perThread = 4, 50

	tids := make([]Tid, 0, threads)
	for i := 0; i < threads; i++ {
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < perThread; j++ {
				mu.Lock()
				temp := counter
				rt.Yield()
				counter = temp + 1
				mu.Unlock()
			}
			return nil
		}, nil)
		require.NoError(t, err)
		tids = append(tids, tid)
	}

	for _, tid := range tids {
		_, err := rt.Join(tid)
		require.NoError(t, err)
	}
	require.Equal(t, threads*perThread, counter)
}

func TestMutexUnlockByNonOwnerIsNoOp(t *testing.T) {
	rt := newTestRuntime()
	mu := rt.NewMutex()

	tid, err := rt.Create(func(arg any) any {
		mu.Lock()
		rt.Yield()
		mu.Unlock()
		return nil
	}, nil)
	require.NoError(t, err)

	rt.Yield() // let the thread above take the lock and yield inside it
	require.True(t, mu.locked)
	mu.Unlock() // boot does not own it; must be ignored
	require.True(t, mu.locked)

	_, err = rt.Join(tid)
	require.NoError(t, err)
	require.False(t, mu.locked)
}

func TestMutexWakesWaitersFIFO(t *testing.T) {
	rt := newTestRuntime()
	mu := rt.NewMutex()
	mu.Lock() // bootstrap thread holds it first

	var acquireOrder []int
	tids := make([]Tid, 0, 3)
	for i := 1; i <= 3; i++ {
		id := i
		tid, err := rt.Create(func(arg any) any {
			mu.Lock()
			acquireOrder = append(acquireOrder, id)
			mu.Unlock()
			return nil
		}, nil)
		require.NoError(t, err)
		tids = append(tids, tid)
	}

	for range tids {
		rt.Yield() // let each thread enqueue on mu in creation order
	}
	mu.Unlock() // release to let waiters proceed in FIFO order

	for _, tid := range tids {
		_, err := rt.Join(tid)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3}, acquireOrder)
}
