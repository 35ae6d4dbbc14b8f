package playback

import (
	"sort"
	"sync"
	"time"
)

// Task is a cancellable periodic callback.
type Task interface {
	Stop()
}

type Scheduler interface {
	Every(d time.Duration, fn func()) Task
}

type TickerScheduler struct{}

func NewTickerScheduler() TickerScheduler { return TickerScheduler{} }

func (TickerScheduler) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{stop: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return t
}

type tickerTask struct {
	once sync.Once
	stop chan struct{}
}

func (t *tickerTask) Stop() { t.once.Do(func() { close(t.stop) }) }

// VirtualScheduler runs tasks against a manually advanced clock. Callbacks
// run on the goroutine calling Advance or Tick.
type VirtualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*virtualTask
}

type virtualTask struct {
	s       *VirtualScheduler
	id      int
	every   time.Duration
	next    time.Duration
	fn      func()
	stopped bool
}

func NewVirtualScheduler() *VirtualScheduler { return &VirtualScheduler{} }

func (s *VirtualScheduler) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		d = time.Nanosecond
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &virtualTask{s: s, id: s.seq, every: d, next: s.now + d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (t *virtualTask) Stop() {
	t.s.mu.Lock()
	t.stopped = true
	t.s.mu.Unlock()
}

func (s *VirtualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *VirtualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.tasks)
}

// Advance moves the clock forward by d, firing every due tick in time
// order, and returns the number of callbacks run.
func (s *VirtualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	fired := 0
	for s.fireNext(target) {
		fired++
	}

	s.mu.Lock()
	if s.now < target {
		s.now = target
	}
	s.mu.Unlock()
	return fired
}

// Tick jumps to the next due instant and fires it. It reports false when
// no task is armed.
func (s *VirtualScheduler) Tick() bool {
	return s.fireNext(-1)
}

// fireNext runs the earliest due task not later than limit; a negative
// limit means no limit.
func (s *VirtualScheduler) fireNext(limit time.Duration) bool {
	s.mu.Lock()
	s.pruneLocked()
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return false
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].next == s.tasks[j].next {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].next < s.tasks[j].next
	})
	t := s.tasks[0]
	if limit >= 0 && t.next > limit {
		s.mu.Unlock()
		return false
	}
	s.now = t.next
	t.next += t.every
	fn := t.fn
	s.mu.Unlock()

	fn()
	return true
}

func (s *VirtualScheduler) pruneLocked() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
