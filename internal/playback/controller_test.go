package playback_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CompProgTools/Algoview/internal/playback"
	"github.com/CompProgTools/Algoview/internal/search"
)

// capturingScheduler keeps every callback it was handed, stopped or not,
// so specs can fire ticks that a real timer might still deliver late.
type capturingScheduler struct {
	mu    sync.Mutex
	fns   []func()
	stops int
}

type capturedTask struct{ s *capturingScheduler }

func (t capturedTask) Stop() {
	t.s.mu.Lock()
	t.s.stops++
	t.s.mu.Unlock()
}

func (s *capturingScheduler) Every(_ time.Duration, fn func()) playback.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = append(s.fns, fn)
	return capturedTask{s: s}
}

func (s *capturingScheduler) fire(i int) {
	s.mu.Lock()
	fn := s.fns[i]
	s.mu.Unlock()
	fn()
}

var (
	sorted   = []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25}
	unsorted = []int{7, 2, 9, 1, 5, 6, 3, 8, 4}
)

var _ = Describe("Controller", func() {
	var (
		clock *playback.VirtualScheduler
		ctrl  *playback.Controller
		trace search.Trace
	)

	BeforeEach(func() {
		clock = playback.NewVirtualScheduler()
		ctrl = playback.New(clock)
		trace = search.LinearSearch(unsorted, 5)
		ctrl.Reset(trace)
	})

	Describe("Reset", func() {
		It("starts idle with no step shown", func() {
			Expect(ctrl.Cursor()).To(Equal(-1))
			Expect(ctrl.IsPlaying()).To(BeFalse())
			Expect(ctrl.IsComplete()).To(BeFalse())
			Expect(ctrl.Status()).To(Equal(playback.Idle))

			_, ok := ctrl.CurrentStep()
			Expect(ok).To(BeFalse())
		})

		It("returns to idle mid-playback and cancels the timer", func() {
			ctrl.Play()
			clock.Advance(2 * time.Second)
			Expect(ctrl.Cursor()).To(Equal(1))

			ctrl.Reset(search.LinearSearch(unsorted, 4))
			Expect(ctrl.Status()).To(Equal(playback.Idle))
			Expect(clock.Pending()).To(Equal(0))

			clock.Advance(10 * time.Second)
			Expect(ctrl.Cursor()).To(Equal(-1))
		})
	})

	Describe("Play", func() {
		It("advances one step per interval", func() {
			ctrl.Play()
			Expect(ctrl.Status()).To(Equal(playback.Playing))

			clock.Advance(999 * time.Millisecond)
			Expect(ctrl.Cursor()).To(Equal(-1))

			clock.Advance(time.Millisecond)
			Expect(ctrl.Cursor()).To(Equal(0))

			step, ok := ctrl.CurrentStep()
			Expect(ok).To(BeTrue())
			Expect(step).To(Equal(trace.At(0)))
		})

		It("reaches min(N, len-1) after N ticks", func() {
			for n := 1; n <= 7; n++ {
				ctrl.Reset(trace)
				ctrl.Play()
				clock.Advance(time.Duration(n) * time.Second)
				Expect(ctrl.Cursor()).To(Equal(min(n-1, trace.Len()-1)))
				ctrl.Reset(trace)
			}
		})

		It("completes exactly on the last step and stops the timer", func() {
			ctrl.Play()
			clock.Advance(time.Duration(trace.Len()) * time.Second)

			Expect(ctrl.Cursor()).To(Equal(trace.Len() - 1))
			Expect(ctrl.IsComplete()).To(BeTrue())
			Expect(ctrl.IsPlaying()).To(BeFalse())
			Expect(ctrl.Status()).To(Equal(playback.Complete))
			Expect(clock.Pending()).To(Equal(0))
			Expect(ctrl.Done()).To(BeClosed())

			clock.Advance(time.Minute)
			Expect(ctrl.Cursor()).To(Equal(trace.Len() - 1))
		})

		It("uses the binary cadence for binary traces", func() {
			ctrl.Reset(search.BinarySearch(sorted, 14))
			ctrl.Play()

			clock.Advance(time.Second)
			Expect(ctrl.Cursor()).To(Equal(-1))
			clock.Advance(500 * time.Millisecond)
			Expect(ctrl.Cursor()).To(Equal(0))
		})

		It("honours an interval override", func() {
			ctrl = playback.New(clock, playback.WithInterval(10*time.Millisecond))
			ctrl.Reset(trace)
			ctrl.Play()

			clock.Advance(30 * time.Millisecond)
			Expect(ctrl.Cursor()).To(Equal(2))
		})

		It("is a no-op on an empty trace", func() {
			ctrl.Reset(search.LinearSearch(nil, 5))
			ctrl.Play()

			Expect(ctrl.IsPlaying()).To(BeFalse())
			Expect(clock.Pending()).To(Equal(0))
		})

		It("is a no-op once complete", func() {
			ctrl.Play()
			for clock.Tick() {
			}
			Expect(ctrl.IsComplete()).To(BeTrue())

			ctrl.Play()
			Expect(ctrl.IsPlaying()).To(BeFalse())
			Expect(clock.Pending()).To(Equal(0))
		})

		It("plays a single-step trace to completion in one tick", func() {
			ctrl.Reset(search.BinarySearch(sorted, 13))
			ctrl.Play()
			Expect(clock.Tick()).To(BeTrue())

			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.IsComplete()).To(BeTrue())
			Expect(clock.Tick()).To(BeFalse())
		})

		It("never keeps two timers armed", func() {
			ctrl.Play()
			ctrl.Play()
			ctrl.Pause()
			ctrl.Play()
			Expect(clock.Pending()).To(Equal(1))

			clock.Advance(time.Second)
			Expect(ctrl.Cursor()).To(Equal(0))
		})
	})

	Describe("Pause", func() {
		It("resumes from the same cursor", func() {
			ctrl.Play()
			clock.Advance(3 * time.Second)
			ctrl.Pause()

			Expect(ctrl.Status()).To(Equal(playback.Paused))
			Expect(clock.Pending()).To(Equal(0))
			clock.Advance(5 * time.Second)
			Expect(ctrl.Cursor()).To(Equal(2))

			ctrl.Play()
			clock.Advance(time.Second)
			Expect(ctrl.Cursor()).To(Equal(3))
		})

		It("is idempotent", func() {
			var snaps []playback.Snapshot
			ctrl = playback.New(clock, playback.WithObserver(func(s playback.Snapshot) {
				snaps = append(snaps, s)
			}))
			ctrl.Reset(trace)
			ctrl.Play()
			ctrl.Pause()
			ctrl.Pause()

			Expect(snaps).To(HaveLen(3))
			Expect(ctrl.IsPlaying()).To(BeFalse())
		})
	})

	Describe("Toggle", func() {
		It("flips between playing and paused", func() {
			ctrl.Toggle()
			Expect(ctrl.IsPlaying()).To(BeTrue())
			ctrl.Toggle()
			Expect(ctrl.IsPlaying()).To(BeFalse())
		})
	})

	Describe("stale ticks", func() {
		var capture *capturingScheduler

		BeforeEach(func() {
			capture = &capturingScheduler{}
			ctrl = playback.New(capture)
			ctrl.Reset(trace)
		})

		It("ignores a tick queued before reset", func() {
			ctrl.Play()
			capture.fire(0)
			Expect(ctrl.Cursor()).To(Equal(0))

			ctrl.Reset(search.LinearSearch(unsorted, 8))
			capture.fire(0)
			Expect(ctrl.Cursor()).To(Equal(-1))
		})

		It("ignores a tick from a timer replaced by play", func() {
			ctrl.Play()
			ctrl.Pause()
			ctrl.Play()

			capture.fire(0)
			Expect(ctrl.Cursor()).To(Equal(-1))
			capture.fire(1)
			Expect(ctrl.Cursor()).To(Equal(0))
		})

		It("never overruns the trace when ticks are forced past completion", func() {
			ctrl.Play()
			for i := 0; i < trace.Len()+5; i++ {
				capture.fire(0)
			}
			Expect(ctrl.Cursor()).To(Equal(trace.Len() - 1))
			Expect(ctrl.IsComplete()).To(BeTrue())
		})
	})

	Describe("observers", func() {
		It("sees every advance in order", func() {
			var cursors []int
			ctrl = playback.New(clock, playback.WithObserver(func(s playback.Snapshot) {
				cursors = append(cursors, s.Cursor)
			}))
			ctrl.Reset(trace)
			ctrl.Play()
			for clock.Tick() {
			}

			Expect(cursors).To(Equal([]int{-1, -1, 0, 1, 2, 3, 4}))
		})

		It("receives the final step before Done is closed", func() {
			var mu sync.Mutex
			delivered := false
			ctrl = playback.New(playback.NewTickerScheduler(),
				playback.WithInterval(time.Millisecond),
				playback.WithObserver(func(s playback.Snapshot) {
					if !s.Complete {
						return
					}
					time.Sleep(20 * time.Millisecond)
					mu.Lock()
					delivered = true
					mu.Unlock()
				}))
			ctrl.Reset(search.LinearSearch([]int{4, 8}, 8))
			ctrl.Play()

			Eventually(ctrl.Done()).WithTimeout(time.Second).Should(BeClosed())
			mu.Lock()
			defer mu.Unlock()
			Expect(delivered).To(BeTrue())
		})

		It("is not closed while a slow observer holds the final step", func() {
			release := make(chan struct{})
			ctrl = playback.New(clock, playback.WithObserver(func(s playback.Snapshot) {
				if s.Complete {
					<-release
				}
			}))
			ctrl.Reset(search.LinearSearch([]int{4}, 4))
			done := ctrl.Done()
			ctrl.Play()

			go clock.Tick()
			Eventually(ctrl.IsComplete).Should(BeTrue())
			Consistently(done, 30*time.Millisecond).ShouldNot(BeClosed())

			close(release)
			Eventually(done).Should(BeClosed())
		})
	})
})
