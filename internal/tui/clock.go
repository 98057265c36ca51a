package tui

import (
	"fmt"
	"time"
)

// gameClock tracks how long the current field has been worked. It starts
// on the first reveal and stops on game end; time spent in menus is
// deducted as stoppage.
type gameClock struct {
	now      func() time.Time // swapped out in tests
	started  time.Time
	ended    time.Time
	stoppage time.Duration
}

func newGameClock() *gameClock {
	return &gameClock{now: time.Now}
}

func (c *gameClock) start() {
	if c.started.IsZero() {
		c.started = c.now()
	}
}

func (c *gameClock) stop() {
	if !c.started.IsZero() && c.ended.IsZero() {
		c.ended = c.now()
	}
}

func (c *gameClock) running() bool {
	return !c.started.IsZero() && c.ended.IsZero()
}

func (c *gameClock) addStoppage(d time.Duration) {
	if c.running() {
		c.stoppage += d
	}
}

func (c *gameClock) elapsed() time.Duration {
	if c.started.IsZero() {
		return 0
	}
	end := c.ended
	if end.IsZero() {
		end = c.now()
	}
	return end.Sub(c.started) - c.stoppage
}

// String formats the clock as mm:ss, growing to hh:mm:ss past an hour.
func (c *gameClock) String() string {
	d := c.elapsed()
	clock := fmt.Sprintf("%02d:%02d", int(d.Minutes())%60, int(d.Seconds())%60)
	if h := int(d.Hours()); h > 0 {
		clock = fmt.Sprintf("%02d:%s", h, clock)
	}
	return clock
}
