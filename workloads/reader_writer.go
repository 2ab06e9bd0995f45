package workloads

import "github.com/krishkuchroo/xv6-finalproject/internal/uthread"

const (
	readsPerReader  = 5
	writesPerWriter = 3
	readSimYields   = 100
)

// rwLock is a writer-priority reader-writer lock built from a Mutex and two
// Conds, ported from
// original_source/user_threading_library_core/examples/reader_writer.c's
// struct rwlock. Writers increment writersWaiting before blocking so new
// readers see priority and park behind them (spec §3's FIFO wait queues make
// each individual Cond fair; writer priority itself is this lock's own
// policy, layered on top).
type rwLock struct {
	rt             *uthread.Runtime
	readersActive  int
	writersWaiting int
	writerActive   bool
	lock           *uthread.Mutex
	readersOK      *uthread.Cond
	writersOK      *uthread.Cond
}

func newRWLock(rt *uthread.Runtime) *rwLock {
	return &rwLock{
		rt:        rt,
		lock:      rt.NewMutex(),
		readersOK: rt.NewCond(),
		writersOK: rt.NewCond(),
	}
}

func (rw *rwLock) readerLock() {
	rw.lock.Lock()
	for rw.writerActive || rw.writersWaiting > 0 {
		rw.readersOK.Wait(rw.lock)
	}
	rw.readersActive++
	rw.lock.Unlock()
}

func (rw *rwLock) readerUnlock() {
	rw.lock.Lock()
	rw.readersActive--
	if rw.readersActive == 0 && rw.writersWaiting > 0 {
		rw.writersOK.Signal()
	}
	rw.lock.Unlock()
}

func (rw *rwLock) writerLock() {
	rw.lock.Lock()
	rw.writersWaiting++
	for rw.readersActive > 0 || rw.writerActive {
		rw.writersOK.Wait(rw.lock)
	}
	rw.writersWaiting--
	rw.writerActive = true
	rw.lock.Unlock()
}

func (rw *rwLock) writerUnlock() {
	rw.lock.Lock()
	rw.writerActive = false
	if rw.writersWaiting > 0 {
		rw.writersOK.Signal()
	} else {
		rw.readersOK.Broadcast()
	}
	rw.lock.Unlock()
}

// ReaderWriterResult reports the final shared value and the sequence of
// values observed immediately after each write, in commit order — enough to
// check spec §8 scenario 6's "between any two writes, the shared value is
// monotonically non-decreasing" invariant.
type ReaderWriterResult struct {
	Final        int
	WriteHistory []int
}

// ReaderWriter spawns numReaders readers and numWriters writers over a
// shared int guarded by a writer-priority rwLock. The final value must equal
// numWriters*writesPerWriter for the run to count as correct — matching
// reader_writer.c's own success check.
func ReaderWriter(rt *uthread.Runtime, numReaders, numWriters int) (ReaderWriterResult, error) {
	rt.Init()

	sharedData := 0
	var history []int
	rw := newRWLock(rt)

	readerTids := make([]uthread.Tid, 0, numReaders)
	for r := 0; r < numReaders; r++ {
		tid, err := rt.Create(func(arg any) any {
			for i := 0; i < readsPerReader; i++ {
				rw.readerLock()
				_ = sharedData
				for j := 0; j < readSimYields; j++ {
					rt.Yield()
				}
				rw.readerUnlock()
				rt.Yield()
			}
			return nil
		}, nil)
		if err != nil {
			return ReaderWriterResult{}, err
		}
		readerTids = append(readerTids, tid)
	}

	writerTids := make([]uthread.Tid, 0, numWriters)
	for w := 0; w < numWriters; w++ {
		tid, err := rt.Create(func(arg any) any {
			for i := 0; i < writesPerWriter; i++ {
				rw.writerLock()
				sharedData++
				history = append(history, sharedData)
				for j := 0; j < readSimYields; j++ {
					rt.Yield()
				}
				rw.writerUnlock()
				rt.Yield()
			}
			return nil
		}, nil)
		if err != nil {
			return ReaderWriterResult{}, err
		}
		writerTids = append(writerTids, tid)
	}

	for _, tid := range readerTids {
		if _, err := rt.Join(tid); err != nil {
			return ReaderWriterResult{}, err
		}
	}
	for _, tid := range writerTids {
		if _, err := rt.Join(tid); err != nil {
			return ReaderWriterResult{}, err
		}
	}

	return ReaderWriterResult{Final: sharedData, WriteHistory: history}, nil
}
