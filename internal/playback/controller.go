package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/CompProgTools/Algoview/internal/search"
)

type Status int

const (
	Idle Status = iota
	Playing
	Paused
	Complete
)

func (s Status) String() string {
	return [...]string{"idle", "playing", "paused", "complete"}[s]
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Kind     search.Kind
	Len      int
	Cursor   int
	Playing  bool
	Complete bool
	Step     search.Step
}

func (s Snapshot) Status() Status {
	switch {
	case s.Complete:
		return Complete
	case s.Playing:
		return Playing
	case s.Cursor == -1:
		return Idle
	default:
		return Paused
	}
}

type Option func(*Controller)

// WithInterval overrides the per-algorithm cadence.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to receive a snapshot after every state
// change. fn runs outside the controller lock.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) { c.observers = append(c.observers, fn) }
}

type Controller struct {
	mu        sync.Mutex
	sched     Scheduler
	interval  time.Duration
	logger    *slog.Logger
	observers []func(Snapshot)

	trace    search.Trace
	cursor   int
	playing  bool
	complete bool
	task     Task
	gen      uint64
	done     chan struct{}
}

func New(sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sched:  sched,
		logger: slog.New(slog.DiscardHandler),
		cursor: -1,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset installs tr and returns to Idle. Any armed tick is cancelled and
// any tick already in flight is ignored.
func (c *Controller) Reset(tr search.Trace) {
	c.mu.Lock()
	c.stopLocked()
	c.trace = tr
	c.cursor = -1
	c.playing = false
	c.complete = false
	c.done = make(chan struct{})
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("playback reset", "algorithm", tr.Kind().String(), "steps", tr.Len())
	c.notify(snap)
}

// Play starts or resumes playback from the current cursor. It is a no-op
// on an empty trace or once the last step is shown.
func (c *Controller) Play() {
	c.mu.Lock()
	if c.trace.Len() == 0 || c.cursor >= c.trace.Len()-1 {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.playing = true
	gen := c.gen
	interval := c.intervalLocked()
	c.task = c.sched.Every(interval, func() { c.tick(gen) })
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("playback started", "cursor", snap.Cursor, "interval", interval)
	c.notify(snap)
}

func (c *Controller) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.playing = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("playback paused", "cursor", snap.Cursor)
	c.notify(snap)
}

func (c *Controller) Toggle() {
	if c.IsPlaying() {
		c.Pause()
		return
	}
	c.Play()
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.playing {
		c.mu.Unlock()
		return
	}
	c.cursor++
	last := c.trace.Len() - 1
	finished := c.cursor >= last
	var done chan struct{}
	if finished {
		c.cursor = last
		c.playing = false
		c.complete = true
		c.stopLocked()
		done = c.done
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	if finished {
		c.logger.Debug("playback complete", "steps", snap.Len, "found", snap.Step.IsFound())
		close(done)
	}
}

// stopLocked cancels the armed task and invalidates ticks already queued.
func (c *Controller) stopLocked() {
	c.gen++
	if c.task != nil {
		c.task.Stop()
		c.task = nil
	}
}

func (c *Controller) intervalLocked() time.Duration {
	if c.interval > 0 {
		return c.interval
	}
	return c.trace.Kind().Interval()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Kind:     c.trace.Kind(),
		Len:      c.trace.Len(),
		Cursor:   c.cursor,
		Playing:  c.playing,
		Complete: c.complete,
	}
	if c.cursor >= 0 {
		s.Step = c.trace.At(c.cursor)
	}
	return s
}

func (c *Controller) notify(s Snapshot) {
	for _, fn := range c.observers {
		fn(s)
	}
}

// CurrentStep returns the step under the cursor, or false before the
// first tick.
func (c *Controller) CurrentStep() (search.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor == -1 {
		return nil, false
	}
	return c.trace.At(c.cursor), true
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) Status() Status { return c.Snapshot().Status() }

func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

func (c *Controller) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.complete
}

func (c *Controller) Trace() search.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace
}

func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intervalLocked()
}

// Done is closed once the last step of the installed trace has been
// delivered to every observer. Reset replaces the channel.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}
