package uthread

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRuntime() *Runtime {
	rt := New(Config{MaxThreads: 8, StackSize: 4096, Logger: nil})
	rt.Init()
	return rt
}

func TestInitInstallsBootstrapThread(t *testing.T) {
	rt := newTestRuntime()
	require.Equal(t, BootstrapTid, rt.Self())
	require.Equal(t, Running, rt.current.state)
}

func TestCreateAndJoinReturnsRetval(t *testing.T) {
	rt := newTestRuntime()
	tid, err := rt.Create(func(arg any) any {
		return arg.(int) * 2
	}, 21)
	require.NoError(t, err)

	got, err := rt.Join(tid)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestJoinUnknownTidErrors(t *testing.T) {
	rt := newTestRuntime()
	_, err := rt.Join(99)
	require.ErrorIs(t, err, ErrUnknownTid)
}

func TestCreateFillsTableThenErrors(t *testing.T) {
	rt := New(Config{MaxThreads: 2, StackSize: 4096})
	rt.Init() // occupies slot 0 with the bootstrap thread
	_, err := rt.Create(func(arg any) any { return nil }, nil)
	require.NoError(t, err)

	_, err = rt.Create(func(arg any) any { return nil }, nil)
	require.ErrorIs(t, err, ErrTableFull)
}

func TestYieldRunsOtherThreadsRoundRobin(t *testing.T) {
	rt := newTestRuntime()
	var order []int

	tid1, _ := rt.Create(func(arg any) any {
		order = append(order, 1)
		rt.Yield()
		order = append(order, 3)
		return nil
	}, nil)
	tid2, _ := rt.Create(func(arg any) any {
		order = append(order, 2)
		return nil
	}, nil)

	rt.Yield() // boot schedules into tid1, which yields into tid2, which finishes
	_, err := rt.Join(tid1)
	require.NoError(t, err)
	_, err = rt.Join(tid2)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, order)
}

func TestReapFreesSlotForReuse(t *testing.T) {
	rt := New(Config{MaxThreads: 2, StackSize: 4096})
	rt.Init()

	tid, err := rt.Create(func(arg any) any { return nil }, nil)
	require.NoError(t, err)
	_, err = rt.Join(tid)
	require.NoError(t, err)

	// The slot tid occupied must be UNUSED and reusable now.
	_, err = rt.Create(func(arg any) any { return nil }, nil)
	require.NoError(t, err)
}

func TestExactlyOneRunningAtEverySuspensionPoint(t *testing.T) {
	rt := newTestRuntime()
	tids := make([]Tid, 0, 3)
	for i := 0; i < 3; i++ {
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < 5; j++ {
				running := 0
				for _, s := range rt.slots {
					if s != nil && s.state == Running {
						running++
					}
				}
				require.Equal(t, 1, running)
				rt.Yield()
			}
			return nil
		}, nil)
		require.NoError(t, err)
		tids = append(tids, tid)
	}

	rt.Yield()
	for _, tid := range tids {
		_, err := rt.Join(tid)
		require.NoError(t, err)
	}
}
