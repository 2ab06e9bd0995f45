package uthread

import (
	goruntime "runtime"

	"github.com/krishkuchroo/xv6-finalproject/internal/ulog"
)

// Runtime is the single process-wide-equivalent instance spec.md §9 asks
// for: it owns the thread table, the current-thread pointer, and the tid
// counter, encapsulated so nothing outside this package ever touches them
// directly. Construct one with New and call Init exactly once before using
// it, from the goroutine that will stand in for the bootstrap thread.
type Runtime struct {
	slots     []*tcb
	current   *tcb
	nextTid   Tid
	stackSize int
	log       ulog.Logger
}

// New builds a Runtime from cfg. It does not call Init.
func New(cfg Config) *Runtime {
	if cfg.MaxThreads <= 0 {
		cfg.MaxThreads = DefaultMaxThreads
	}
	if cfg.StackSize <= 0 {
		cfg.StackSize = DefaultStackSize
	}
	if cfg.Logger == nil {
		cfg.Logger = ulog.Default()
	}
	return &Runtime{
		slots:     make([]*tcb, cfg.MaxThreads),
		stackSize: cfg.StackSize,
		log:       cfg.Logger,
	}
}

// Init resets the thread table, installs the bootstrap thread (tid 0, slot
// 0, RUNNING) as current, and primes the tid counter at 1 (spec.md §4.2).
// Call it once, from the goroutine that will act as the bootstrap thread —
// re-entry is undefined, matching the spec.
func (rt *Runtime) Init() {
	for i := range rt.slots {
		rt.slots[i] = nil
	}
	boot := &tcb{
		tid:       BootstrapTid,
		slot:      0,
		state:     Running,
		waitingOn: noTid,
		turn:      make(chan struct{}),
	}
	rt.slots[0] = boot
	rt.current = boot
	rt.nextTid = 1
	rt.log.Debug("runtime initialized", "max_threads", len(rt.slots), "stack_size", rt.stackSize)
}

// Self returns the tid of the calling thread (spec.md §4.2).
func (rt *Runtime) Self() Tid {
	return rt.current.tid
}

// Create installs a new thread running fn(arg), returning its tid, or
// ErrTableFull if every slot is occupied (spec.md §4.3).
func (rt *Runtime) Create(fn StartFunc, arg any) (Tid, error) {
	for i, s := range rt.slots {
		if s != nil {
			continue
		}
		tid := rt.nextTid
		rt.nextTid++
		t := &tcb{
			tid:       tid,
			slot:      i,
			state:     Runnable,
			stack:     make([]byte, rt.stackSize),
			startFn:   fn,
			arg:       arg,
			waitingOn: noTid,
			turn:      make(chan struct{}),
		}
		rt.slots[i] = t
		rt.log.Debug("thread created", "tid", int(tid), "slot", i)
		go rt.runThread(t)
		return tid, nil
	}
	rt.log.Warn("thread table full", "max_threads", len(rt.slots))
	return 0, ErrTableFull
}

// runThread is the trampoline of spec.md §4.1: it blocks until first
// scheduled in, runs the thread's entry function, then exits unconditionally.
// It never returns to its caller in the success path — Exit ends the
// goroutine via runtime.Goexit — so the only way this function body
// completes normally is if the thread is reaped before ever running once
// (turn closed while still parked on the first receive).
func (rt *Runtime) runThread(t *tcb) {
	if _, ok := <-t.turn; !ok {
		return
	}
	retval := t.startFn(t.arg)
	rt.Exit(retval)
}

// Yield voluntarily gives up the CPU, remaining RUNNABLE (spec.md §4.3).
func (rt *Runtime) Yield() {
	rt.current.state = Runnable
	rt.schedule()
}

// Exit terminates the calling thread with the given return value, wakes any
// thread joined on it, and hands control to the scheduler. It never returns
// (spec.md §4.3); the final runtime.Goexit makes that unconditional
// regardless of whether the caller is the trampoline or user code that
// called Exit directly mid-execution.
func (rt *Runtime) Exit(retval any) {
	t := rt.current
	t.retval = retval
	t.state = Terminated
	rt.log.Debug("thread exiting", "tid", int(t.tid))
	for _, s := range rt.slots {
		if s != nil && s.waitingOn == t.tid {
			s.state = Runnable
			s.waitingOn = noTid
		}
	}
	rt.schedule()
	goruntime.Goexit()
}

// Join blocks until tid has terminated, then reaps its slot and returns its
// retval. It returns ErrUnknownTid immediately if tid names no live or
// terminated thread (spec.md §4.3). Concurrent joins on the same tid are
// undefined, as the spec allows.
func (rt *Runtime) Join(tid Tid) (any, error) {
	target := rt.find(tid)
	if target == nil {
		return nil, ErrUnknownTid
	}
	for target.state != Terminated {
		rt.current.waitingOn = tid
		rt.current.state = Blocked
		rt.schedule()
	}
	retval := target.retval
	rt.reap(target)
	return retval, nil
}

func (rt *Runtime) find(tid Tid) *tcb {
	for _, s := range rt.slots {
		if s != nil && s.tid == tid {
			return s
		}
	}
	return nil
}

func (rt *Runtime) reap(t *tcb) {
	rt.log.Debug("thread reaped", "tid", int(t.tid), "slot", t.slot)
	rt.slots[t.slot] = nil
	t.state = Unused
	close(t.turn)
}

// schedule implements the round-robin selection and baton handoff of
// spec.md §4.2. If current was RUNNING it is demoted to RUNNABLE first;
// the scan then starts at the slot after current and wraps through every
// slot once, including current's own, so "current continues if nothing
// else is runnable" falls out of the same pass rather than needing a
// separate fallback check. If nothing is RUNNABLE at all, this is deadlock:
// schedule logs it and returns without switching, so the caller keeps
// running; Join and Mutex.Lock then re-enter schedule from their wait loops
// indefinitely.
func (rt *Runtime) schedule() {
	old := rt.current
	if old.state == Running {
		old.state = Runnable
	}
	next := rt.pickNext()
	if next == nil {
		rt.log.Error("deadlock: no runnable thread", "current_tid", int(old.tid))
		return
	}
	rt.current = next
	next.state = Running
	if next == old {
		return
	}
	next.turn <- struct{}{}
	<-old.turn
}

func (rt *Runtime) pickNext() *tcb {
	n := len(rt.slots)
	start := rt.current.slot
	for i := 1; i <= n; i++ {
		idx := (start + i) % n
		s := rt.slots[idx]
		if s != nil && s.state == Runnable {
			return s
		}
	}
	return nil
}
