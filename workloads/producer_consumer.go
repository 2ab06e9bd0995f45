package workloads

import "github.com/krishkuchroo/xv6-finalproject/internal/uthread"

const (
	bufferSize       = 5
	itemsPerProducer = 10
)

// ProducerConsumerResult reports the totals each side observed, which must
// be equal for the run to count as correct.
type ProducerConsumerResult struct {
	TotalProduced int
	TotalConsumed int
}

// ProducerConsumerSem runs the classic bounded-buffer problem with a fixed
// array, two counting semaphores (empty/full), and a buffer mutex, matching
// original_source/user_threading_library_core/examples/producer_consumer_sem.c
// (stats_mutex is kept as a separate statsMu guarding the produced/consumed
// counters).
func ProducerConsumerSem(rt *uthread.Runtime, numProducers, numConsumers int) (ProducerConsumerResult, error) {
	rt.Init()

	var buffer [bufferSize]int
	in, out := 0, 0
	empty := rt.NewSemaphore(bufferSize)
	full := rt.NewSemaphore(0)
	bufMu := rt.NewMutex()

	totalItems := numProducers * itemsPerProducer
	produced, consumed := 0, 0
	statsMu := rt.NewMutex()

	producerTids := make([]uthread.Tid, 0, numProducers)
	for p := 0; p < numProducers; p++ {
		pid := p
		tid, err := rt.Create(func(arg any) any {
			for i := 0; i < itemsPerProducer; i++ {
				item := pid*100 + i
				empty.Wait()
				bufMu.Lock()
				buffer[in] = item
				in = (in + 1) % bufferSize
				bufMu.Unlock()

				statsMu.Lock()
				produced++
				statsMu.Unlock()

				full.Post()
				rt.Yield()
			}
			return nil
		}, nil)
		if err != nil {
			return ProducerConsumerResult{}, err
		}
		producerTids = append(producerTids, tid)
	}

	consumerTids := make([]uthread.Tid, 0, numConsumers)
	for c := 0; c < numConsumers; c++ {
		tid, err := rt.Create(func(arg any) any {
			for {
				statsMu.Lock()
				done := consumed >= totalItems
				statsMu.Unlock()
				if done {
					return nil
				}

				full.Wait()

				statsMu.Lock()
				if consumed >= totalItems {
					statsMu.Unlock()
					full.Post()
					return nil
				}
				statsMu.Unlock()

				bufMu.Lock()
				_ = buffer[out]
				out = (out + 1) % bufferSize
				bufMu.Unlock()

				statsMu.Lock()
				consumed++
				statsMu.Unlock()

				empty.Post()
				rt.Yield()
			}
		}, nil)
		if err != nil {
			return ProducerConsumerResult{}, err
		}
		consumerTids = append(consumerTids, tid)
	}

	for _, tid := range producerTids {
		if _, err := rt.Join(tid); err != nil {
			return ProducerConsumerResult{}, err
		}
	}
	for _, tid := range consumerTids {
		if _, err := rt.Join(tid); err != nil {
			return ProducerConsumerResult{}, err
		}
	}

	return ProducerConsumerResult{TotalProduced: produced, TotalConsumed: consumed}, nil
}

// ProducerConsumerChan runs the same problem over a bounded Channel instead
// of semaphores plus a raw array, matching
// original_source/user_threading_library_core/examples/producer_consumer_chan.c.
// Producers stop on ErrClosed; the channel is closed once every producer has
// joined, after which consumers drain remaining items and exit on ErrClosed.
func ProducerConsumerChan(rt *uthread.Runtime, numProducers, numConsumers, capacity int) (ProducerConsumerResult, error) {
	rt.Init()

	ch, err := rt.NewChannel(capacity)
	if err != nil {
		return ProducerConsumerResult{}, err
	}

	produced, consumed := 0, 0
	statsMu := rt.NewMutex()

	producerTids := make([]uthread.Tid, 0, numProducers)
	for p := 0; p < numProducers; p++ {
		pid := p
		tid, err := rt.Create(func(arg any) any {
			for i := 0; i < itemsPerProducer; i++ {
				item := pid*100 + i
				if err := ch.Send(item); err != nil {
					return nil
				}
				statsMu.Lock()
				produced++
				statsMu.Unlock()
				rt.Yield()
			}
			return nil
		}, nil)
		if err != nil {
			return ProducerConsumerResult{}, err
		}
		producerTids = append(producerTids, tid)
	}

	consumerTids := make([]uthread.Tid, 0, numConsumers)
	for c := 0; c < numConsumers; c++ {
		tid, err := rt.Create(func(arg any) any {
			for {
				if _, err := ch.Recv(); err != nil {
					return nil
				}
				statsMu.Lock()
				consumed++
				statsMu.Unlock()
				rt.Yield()
			}
		}, nil)
		if err != nil {
			return ProducerConsumerResult{}, err
		}
		consumerTids = append(consumerTids, tid)
	}

	for _, tid := range producerTids {
		if _, err := rt.Join(tid); err != nil {
			return ProducerConsumerResult{}, err
		}
	}
	ch.Close()
	for _, tid := range consumerTids {
		if _, err := rt.Join(tid); err != nil {
			return ProducerConsumerResult{}, err
		}
	}

	return ProducerConsumerResult{TotalProduced: produced, TotalConsumed: consumed}, nil
}
