// Package scheduler implements a fixed-size worker pool over a shared
// FIFO task queue: a mutex-guarded queue, a counting semaphore signaling
// pending work, and a second mutex/condition-variable pair guarding a
// barrier over an "unfinished" counter, rather than the more common
// channel-plus-WaitGroup pipeline.
package scheduler

import "sync"

// Task is the scheduler's only contract: anything with a Run method can
// be enqueued. The scheduler itself never inspects what a task does.
type Task interface {
	Run()
}

// shutdownToken is an internal sentinel Task posted once per worker at
// Shutdown. Workers recognize it by type, not by content, and exit
// without counting it against the completion barrier.
type shutdownToken struct{}

func (shutdownToken) Run() {}

// Scheduler is a fixed-size pool of P workers pulling tasks from a shared
// FIFO queue. Its lifecycle is New, Run, (Enqueue)*, WaitForCompletion,
// Shutdown.
type Scheduler struct {
	numWorkers int

	queue      []Task
	queueMutex sync.Mutex

	// sem is the counting semaphore: one buffered token per task (real
	// or sentinel) posted to the queue, so a worker blocking on <-sem
	// never wakes to find the queue empty.
	sem chan struct{}

	runMutex   sync.Mutex
	cond       *sync.Cond
	unfinished int

	wg sync.WaitGroup
}

// New creates a scheduler with the given worker count. capacity bounds
// the number of tasks (including the numWorkers shutdown tokens posted
// at Shutdown) that can be pending at once without Enqueue blocking;
// callers that know their tile count up front should size it exactly.
func New(numWorkers, capacity int) *Scheduler {
	s := &Scheduler{
		numWorkers: numWorkers,
		sem:        make(chan struct{}, capacity),
	}
	s.cond = sync.NewCond(&s.runMutex)
	return s
}

// Run starts the pool's P workers. Call it once, after construction and
// before any Enqueue.
func (s *Scheduler) Run() {
	for i := 0; i < s.numWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

// Enqueue places task at the back of the queue and posts the semaphore.
// Lock order is always queueMutex before runMutex, held together here so
// a task's arrival and its contribution to the unfinished count are
// never observed independently.
func (s *Scheduler) Enqueue(task Task) {
	s.queueMutex.Lock()
	defer s.queueMutex.Unlock()

	s.queue = append(s.queue, task)

	s.runMutex.Lock()
	s.unfinished++
	s.runMutex.Unlock()

	s.sem <- struct{}{}
}

// worker is the loop each of the pool's P goroutines runs: block on the
// semaphore, pop the queue under its mutex, run the task (or exit on a
// shutdown token), then decrement the unfinished counter and wake any
// WaitForCompletion waiter if the pool just drained.
func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		<-s.sem

		s.queueMutex.Lock()
		task := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMutex.Unlock()

		if _, isShutdown := task.(shutdownToken); isShutdown {
			return
		}

		task.Run()

		s.runMutex.Lock()
		s.unfinished--
		if s.unfinished == 0 {
			s.cond.Broadcast()
		}
		s.runMutex.Unlock()
	}
}

// WaitForCompletion blocks until every task enqueued so far has had its
// Run called exactly once. It does not stop the pool — workers remain
// parked on the semaphore afterward, ready for more Enqueue calls or a
// final Shutdown.
func (s *Scheduler) WaitForCompletion() {
	s.runMutex.Lock()
	for s.unfinished > 0 {
		s.cond.Wait()
	}
	s.runMutex.Unlock()
}

// Shutdown posts one shutdown token per worker so each observes an empty
// queue behind it and exits, then waits for every worker goroutine to
// return. Call it only after a final WaitForCompletion; shutdown tokens
// never increment the unfinished counter.
func (s *Scheduler) Shutdown() {
	for i := 0; i < s.numWorkers; i++ {
		s.queueMutex.Lock()
		s.queue = append(s.queue, shutdownToken{})
		s.queueMutex.Unlock()
		s.sem <- struct{}{}
	}
	s.wg.Wait()
}
