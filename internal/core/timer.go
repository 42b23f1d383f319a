package core

// TickGate throttles a simulation to a fixed tick interval driven by frame
// deltas. The first tick fires after the initial delay, later ticks every
// interval.
type TickGate struct {
	interval     float64
	initialDelay float64
	remaining    float64
	elapsed      float64
}

// NewTickGate constructs a gate. A non-positive interval fires on every
// Advance.
func NewTickGate(interval, initialDelay float64) *TickGate {
	g := &TickGate{interval: interval, initialDelay: initialDelay}
	g.Reset()
	return g
}

// Advance consumes dt seconds. When the gate fires it reports the time
// accumulated since the previous firing and restarts the countdown.
func (g *TickGate) Advance(dt float64) (fired bool, elapsed float64) {
	if dt < 0 {
		dt = 0
	}
	g.remaining -= dt
	g.elapsed += dt
	if g.remaining > 0 {
		return false, 0
	}
	elapsed = g.elapsed
	g.elapsed = 0
	g.remaining = g.interval
	return true, elapsed
}

// Reset restores the initial delay.
func (g *TickGate) Reset() {
	g.remaining = g.initialDelay
	g.elapsed = 0
}

// Remaining returns the time left until the next tick.
func (g *TickGate) Remaining() float64 { return g.remaining }

// Interval returns the steady-state tick interval.
func (g *TickGate) Interval() float64 { return g.interval }
