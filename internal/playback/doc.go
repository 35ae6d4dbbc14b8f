// Package playback drives a timed cursor over a precomputed search trace.
//
// The [Controller] never owns a clock. Ticks come from an injected
// [Scheduler]:
//
//   - [TickerScheduler]: wall-clock ticks from time.Ticker
//   - [VirtualScheduler]: manual clock for tests and instant replays
//
// # State machine
//
//	Idle --Play--> Playing --Pause--> Paused --Play--> Playing
//	Playing --last step reached--> Complete
//	any --Reset--> Idle
//
// # Thread Safety
//
// Controller methods may be called from any goroutine. At most one
// periodic task is armed per controller, and a tick armed before the most
// recent Reset, Play or Pause is ignored.
package playback
