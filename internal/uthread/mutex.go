package uthread

// Mutex is a non-reentrant lock bound to a Runtime (spec.md §4.4). The zero
// value is not usable; construct one with Runtime.NewMutex so owner starts
// at noTid rather than the bootstrap thread's tid.
type Mutex struct {
	rt      *Runtime
	locked  bool
	owner   Tid
	waiters waitQueue
}

// NewMutex returns an unlocked Mutex scheduled by rt.
func (rt *Runtime) NewMutex() *Mutex {
	return &Mutex{rt: rt, owner: noTid}
}

// Lock blocks until the calling thread holds m. Recursive locking by the
// current owner deadlocks the process, per spec.md §4.4's ownership policy —
// this is not detected or prevented, matching "the runtime trusts its
// caller" (spec §7).
func (m *Mutex) Lock() {
	rt := m.rt
	for m.locked {
		m.waiters.enqueue(rt.current.tid)
		rt.current.state = Blocked
		rt.schedule()
	}
	m.locked = true
	m.owner = rt.current.tid
}

// Unlock releases m and wakes at most one waiter, which must re-test m.locked
// on wake (schedule() does not hand off ownership directly — see Lock). If
// the caller does not hold m, the call is a no-op contract violation: it is
// logged and otherwise ignored, per spec.md §4.4 and §7.
func (m *Mutex) Unlock() {
	rt := m.rt
	if m.owner != rt.current.tid {
		rt.log.Warn("unlock by non-owner ignored", "tid", int(rt.current.tid), "owner", int(m.owner))
		return
	}
	if tid, ok := m.waiters.dequeue(); ok {
		if t := rt.find(tid); t != nil {
			t.state = Runnable
		}
	}
	m.locked = false
	m.owner = noTid
}
