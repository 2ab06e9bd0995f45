package uthread

// Cond is a condition variable bound to a Runtime (spec.md §4.6). It never
// records which mutex it is associated with; the caller supplies one on
// every Wait, and Mesa semantics mean a woken waiter must re-test its own
// predicate rather than trust that Signal made it true.
type Cond struct {
	rt      *Runtime
	waiters waitQueue
}

// NewCond returns an empty Cond scheduled by rt.
func (rt *Runtime) NewCond() *Cond {
	return &Cond{rt: rt}
}

// Wait enqueues the calling thread, unlocks m, blocks, and re-acquires m
// before returning. The caller must hold m on entry; behavior otherwise is
// undefined (spec.md §4.6).
func (c *Cond) Wait(m *Mutex) {
	rt := c.rt
	c.waiters.enqueue(rt.current.tid)
	m.Unlock()
	rt.current.state = Blocked
	rt.schedule()
	m.Lock()
}

// Signal wakes the head waiter, if any. The caller is expected, but not
// required, to hold the associated mutex.
func (c *Cond) Signal() {
	rt := c.rt
	if tid, ok := c.waiters.dequeue(); ok {
		if t := rt.find(tid); t != nil {
			t.state = Runnable
		}
	}
}

// Broadcast wakes every waiter, in FIFO order.
func (c *Cond) Broadcast() {
	rt := c.rt
	for _, tid := range c.waiters.drain() {
		if t := rt.find(tid); t != nil {
			t.state = Runnable
		}
	}
}
