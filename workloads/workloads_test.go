package workloads

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krishkuchroo/xv6-finalproject/internal/uthread"
)

func newTestRuntime() *uthread.Runtime {
	return uthread.New(uthread.Config{MaxThreads: 16, StackSize: 4096})
}

func TestBasicJoinReturnsEachThreadsRetval(t *testing.T) {
	res, err := BasicJoin(newTestRuntime(), 3)
	require.NoError(t, err)
	require.Equal(t, []int{100, 200, 300}, res.Retvals)
}

func TestCounterRaceCanLoseUpdates(t *testing.T) {
	got, err := CounterRace(newTestRuntime(), 3)
	require.NoError(t, err)
	require.LessOrEqual(t, got, 3*incrementsPerThread)
}

func TestCounterMutexNeverLosesUpdates(t *testing.T) {
	got, err := CounterMutex(newTestRuntime(), 3)
	require.NoError(t, err)
	require.Equal(t, 3*incrementsPerThread, got)
}

func TestProducerConsumerSemBalancesProducedAndConsumed(t *testing.T) {
	res, err := ProducerConsumerSem(newTestRuntime(), 3, 2)
	require.NoError(t, err)
	require.Equal(t, 3*itemsPerProducer, res.TotalProduced)
	require.Equal(t, res.TotalProduced, res.TotalConsumed)
}

func TestProducerConsumerChanBalancesProducedAndConsumed(t *testing.T) {
	res, err := ProducerConsumerChan(newTestRuntime(), 3, 2, 5)
	require.NoError(t, err)
	require.Equal(t, 3*itemsPerProducer, res.TotalProduced)
	require.Equal(t, res.TotalProduced, res.TotalConsumed)
}

func TestReaderWriterConvergesOnExpectedValue(t *testing.T) {
	res, err := ReaderWriter(newTestRuntime(), 3, 2)
	require.NoError(t, err)
	require.Equal(t, 2*writesPerWriter, res.Final)
}
