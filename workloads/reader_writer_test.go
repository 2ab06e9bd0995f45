package workloads

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderWriterValueIsMonotonicNonDecreasing(t *testing.T) {
	res, err := ReaderWriter(newTestRuntime(), 3, 2)
	require.NoError(t, err)
	require.Len(t, res.WriteHistory, 2*writesPerWriter)

	for i := 1; i < len(res.WriteHistory); i++ {
		require.GreaterOrEqual(t, res.WriteHistory[i], res.WriteHistory[i-1])
	}
	require.Equal(t, res.Final, res.WriteHistory[len(res.WriteHistory)-1])
}

func TestReaderWriterNoReaderEntersWhileWriterWaiting(t *testing.T) {
	rt := newTestRuntime()
	rt.Init()
	rw := newRWLock(rt)
	rw.writersWaiting = 1 // simulate a writer already queued

	admitted := false

	tid, err := rt.Create(func(arg any) any {
		rw.readerLock() // must block: writersWaiting > 0
		admitted = true
		rw.readerUnlock()
		return nil
	}, nil)
	require.NoError(t, err)

	rt.Yield()
	require.False(t, admitted)

	rw.writersWaiting = 0
	rw.readersOK.Broadcast()

	_, err = rt.Join(tid)
	require.NoError(t, err)
	require.True(t, admitted)
}
