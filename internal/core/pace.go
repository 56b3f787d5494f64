package core

import "time"

// maxBurst caps how many generations run in a single frame when the loop
// falls behind, so a long pause does not fast-forward the simulation.
const maxBurst = 4

// Pacer decouples the generation rate from the render frame rate: the driver
// calls Tick once per frame and runs as many generation updates as it
// returns.
type Pacer struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(gps int) *Pacer {
	p := &Pacer{}
	p.SetRate(gps)
	p.acc = p.step
	return p
}

// SetRate changes the generation rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	p.step = time.Second / time.Duration(gps)
}

// Tick reports how many generations should run this frame, based on wall
// clock time since the previous call.
func (p *Pacer) Tick() int {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	return p.Advance(delta)
}

// Advance accumulates delta and drains the accumulator into whole pending
// steps, capped at maxBurst.
func (p *Pacer) Advance(delta time.Duration) int {
	p.acc += delta
	steps := 0
	for p.acc >= p.step && steps < maxBurst {
		p.acc -= p.step
		steps++
	}
	if steps == maxBurst && p.acc >= p.step {
		p.acc = 0
	}
	return steps
}
