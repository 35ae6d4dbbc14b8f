package playback_test

import (
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CompProgTools/Algoview/internal/playback"
)

var _ = Describe("VirtualScheduler", func() {
	It("fires due tasks in time order", func() {
		s := playback.NewVirtualScheduler()
		var order []string
		s.Every(3*time.Second, func() { order = append(order, "slow") })
		s.Every(2*time.Second, func() { order = append(order, "fast") })

		Expect(s.Advance(6 * time.Second)).To(Equal(5))
		Expect(order).To(Equal([]string{"fast", "slow", "fast", "slow", "fast"}))
		Expect(s.Now()).To(Equal(6 * time.Second))
	})

	It("drops stopped tasks", func() {
		s := playback.NewVirtualScheduler()
		var n int
		task := s.Every(time.Second, func() { n++ })
		s.Advance(2 * time.Second)
		task.Stop()

		Expect(s.Pending()).To(Equal(0))
		Expect(s.Advance(5 * time.Second)).To(Equal(0))
		Expect(n).To(Equal(2))
	})

	It("lets a callback stop its own task", func() {
		s := playback.NewVirtualScheduler()
		var task playback.Task
		var n int
		task = s.Every(time.Second, func() {
			n++
			if n == 3 {
				task.Stop()
			}
		})

		for s.Tick() {
		}
		Expect(n).To(Equal(3))
		Expect(s.Now()).To(Equal(3 * time.Second))
	})
})

var _ = Describe("TickerScheduler", func() {
	It("ticks until stopped", func() {
		var n atomic.Int32
		task := playback.NewTickerScheduler().Every(5*time.Millisecond, func() { n.Add(1) })

		Eventually(n.Load).Should(BeNumerically(">=", 2))
		task.Stop()
		task.Stop()

		time.Sleep(20 * time.Millisecond)
		settled := n.Load()
		Consistently(n.Load, 50*time.Millisecond).Should(Equal(settled))
	})
})
