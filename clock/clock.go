package clock

import (
	"log"
	"time"
)

// Clock is a monotonic cycle counter shared by the memory bus and CPU
// interpreter. When Frequency is non-zero, WaitForNextCycle paces
// itself to that target by sleeping until the wall-clock deadline for
// the new cycle count.
type Clock struct {
	Verbose   bool
	Frequency int // target Hz; 0 disables wall-clock pacing

	cycles int64
	start  time.Time
}

// New creates a Clock. A zero Frequency runs uncapped.
func New(frequency int) *Clock {
	return &Clock{Frequency: frequency}
}

// Cycles returns the total number of cycles elapsed so far.
func (c *Clock) Cycles() int64 {
	return c.cycles
}

// Advance adds n cycles to the counter without pacing, used by the CPU
// for cycles that involve no bus access (index adds, page-cross and
// branch penalties, and the top-up to an instruction's base cycles).
func (c *Clock) Advance(n int) {
	c.cycles += int64(n)
}

// WaitForNextCycle advances the counter by one cycle and, if pacing is
// enabled, sleeps until the wall-clock deadline for the new count.
func (c *Clock) WaitForNextCycle() {
	c.cycles++
	if c.Frequency <= 0 {
		return
	}
	if c.start.IsZero() {
		c.start = time.Now()
	}
	deadline := c.start.Add(time.Duration(c.cycles) * time.Second / time.Duration(c.Frequency))
	if wait := time.Until(deadline); wait > 0 {
		time.Sleep(wait)
	}
}

// Step is a single unit of interpreter work: execute one instruction
// and report whether the run should keep going.
type Step func() (halt bool, err error)

// ExecuteWithTimeout calls step repeatedly until it halts, returns an
// error, or the wall-clock budget expires, in which case it fails with
// ErrTimeout.
func (c *Clock) ExecuteWithTimeout(budget time.Duration, step Step) error {
	deadline := time.Now().Add(budget)
	for {
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		halt, err := step()
		if c.Verbose {
			log.Printf("clock: cycle=%d halt=%v err=%v", c.cycles, halt, err)
		}
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
	}
}
