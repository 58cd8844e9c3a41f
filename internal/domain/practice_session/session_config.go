package practicesession

import (
	"math/rand"
	"time"
)

// Config holds the timing knobs of a practice engine.
type Config struct {
	// AdvanceDelay is how long a correct single-answer submission waits
	// before moving on. Zero advances synchronously; otherwise the host is
	// told to call Next after the delay.
	AdvanceDelay time.Duration

	// SwipeCooldown is the window after a swipe during which further
	// swipes are ignored.
	SwipeCooldown time.Duration

	Now     func() time.Time                 // nil = time.Now
	Shuffle func(n int, swap func(i, j int)) // nil = rand.Shuffle
}

// DefaultConfig returns the interactive defaults.
func DefaultConfig() Config {
	return Config{
		AdvanceDelay:  500 * time.Millisecond,
		SwipeCooldown: 300 * time.Millisecond,
	}
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Config) shuffle(n int, swap func(i, j int)) {
	if c.Shuffle == nil {
		rand.Shuffle(n, swap)
		return
	}
	c.Shuffle(n, swap)
}
