package uthread

// waitQueue is the bounded FIFO of tids described in spec.md §3: insertion
// at the tail, removal from the head, a tid appears in at most one queue at
// a time. It holds weak references — the scheduler looks the tid up in the
// thread table on dequeue and silently skips it if the slot moved on
// (spec.md §9, "wait queues holding tids, not TCB references").
type waitQueue struct {
	tids []Tid
}

func (q *waitQueue) enqueue(tid Tid) {
	q.tids = append(q.tids, tid)
}

func (q *waitQueue) dequeue() (Tid, bool) {
	if len(q.tids) == 0 {
		return 0, false
	}
	tid := q.tids[0]
	q.tids = q.tids[1:]
	return tid, true
}

func (q *waitQueue) drain() []Tid {
	tids := q.tids
	q.tids = nil
	return tids
}

func (q *waitQueue) len() int {
	return len(q.tids)
}
