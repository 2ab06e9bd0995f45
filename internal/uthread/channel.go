package uthread

// Channel is a bounded, closeable ring buffer built from a Mutex and two
// Conds, exactly as spec.md §4.7 lays it out (lock, not_empty, not_full).
type Channel struct {
	rt       *Runtime
	buf      []any
	readPos  int
	writePos int
	count    int
	closed   bool
	lock     *Mutex
	notEmpty *Cond
	notFull  *Cond
}

// NewChannel allocates a Channel with the given capacity, or
// ErrInvalidCapacity if capacity < 1 (spec.md §4.7's "returns null on
// allocation failure", translated to a sentinel error).
func (rt *Runtime) NewChannel(capacity int) (*Channel, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	ch := &Channel{
		rt:   rt,
		buf:  make([]any, capacity),
		lock: rt.NewMutex(),
	}
	ch.notEmpty = rt.NewCond()
	ch.notFull = rt.NewCond()
	return ch, nil
}

// Send blocks until there is room or the channel is closed. It returns
// ErrClosed if the channel was already closed, or becomes closed while
// waiting for room (spec.md §4.7).
func (ch *Channel) Send(data any) error {
	ch.lock.Lock()
	defer ch.lock.Unlock()
	if ch.closed {
		return ErrClosed
	}
	for ch.count == len(ch.buf) {
		ch.notFull.Wait(ch.lock)
		if ch.closed {
			return ErrClosed
		}
	}
	ch.buf[ch.writePos] = data
	ch.writePos = (ch.writePos + 1) % len(ch.buf)
	ch.count++
	ch.notEmpty.Signal()
	return nil
}

// Recv blocks until data is available or the channel is closed and drained.
// It returns ErrClosed once count reaches zero on a closed channel
// (spec.md §4.7's "in-flight items remain deliverable until count reaches
// zero").
func (ch *Channel) Recv() (any, error) {
	ch.lock.Lock()
	defer ch.lock.Unlock()
	for ch.count == 0 {
		if ch.closed {
			return nil, ErrClosed
		}
		ch.notEmpty.Wait(ch.lock)
	}
	data := ch.buf[ch.readPos]
	ch.readPos = (ch.readPos + 1) % len(ch.buf)
	ch.count--
	ch.notFull.Signal()
	return data, nil
}

// Close marks the channel closed and wakes every waiter on both conditions.
// It is idempotent.
func (ch *Channel) Close() {
	ch.lock.Lock()
	defer ch.lock.Unlock()
	ch.closed = true
	ch.notEmpty.Broadcast()
	ch.notFull.Broadcast()
}
