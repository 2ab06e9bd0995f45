package uthread

// Semaphore is a counting semaphore bound to a Runtime (spec.md §4.5). Count
// may be transiently negative while threads are parked in Wait; its absolute
// value then equals the number of pending waiters.
type Semaphore struct {
	rt      *Runtime
	count   int
	waiters waitQueue
}

// NewSemaphore returns a Semaphore initialized to the given count.
func (rt *Runtime) NewSemaphore(count int) *Semaphore {
	return &Semaphore{rt: rt, count: count}
}

// Wait decrements count and blocks if the result went negative. Exactly one
// Post is responsible for waking any given blocked caller, so unlike Mutex
// there is no re-test on wake (spec.md §4.5).
func (s *Semaphore) Wait() {
	rt := s.rt
	s.count--
	if s.count < 0 {
		s.waiters.enqueue(rt.current.tid)
		rt.current.state = Blocked
		rt.schedule()
	}
}

// Post increments count and wakes the head waiter, if any.
func (s *Semaphore) Post() {
	rt := s.rt
	s.count++
	if tid, ok := s.waiters.dequeue(); ok {
		if t := rt.find(tid); t != nil {
			t.state = Runnable
		}
	}
}
