package particle

import (
	"github.com/iburimskiy/heartfield/internal/canvas"
	"github.com/iburimskiy/heartfield/internal/frame"
)

// Animator owns a fixed set of particles and redraws them onto a surface once
// per frame. Lifecycle: NewAnimator -> Start -> Stop.
type Animator struct {
	surface canvas.Surface
	frames  frame.Scheduler
	rng     Rand
	cfg     Config

	particles []Particle
	handle    frame.Handle
	running   bool
	ticks     uint64
}

// NewAnimator creates cfg.Count particles positioned below the visible area of
// surface. Nothing is drawn until Start.
func NewAnimator(surface canvas.Surface, frames frame.Scheduler, rng Rand, cfg Config) *Animator {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	a := &Animator{
		surface:   surface,
		frames:    frames,
		rng:       rng,
		cfg:       cfg,
		particles: make([]Particle, cfg.Count),
	}
	w, h := surface.Size()
	for i := range a.particles {
		a.particles[i] = spawn(rng, cfg, w, h)
	}
	return a
}

// Start schedules the first tick. Calling Start on a running animator does nothing.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.handle = a.frames.Request(a.Tick)
}

// Stop cancels the pending tick. It is safe to call more than once.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.frames.Cancel(a.handle)
	a.handle = 0
}

func (a *Animator) Running() bool {
	return a.running
}

// Tick moves every particle, redraws the field and, while running, requests
// the next tick.
func (a *Animator) Tick() {
	w, h := a.surface.Size()

	for i := range a.particles {
		a.particles[i].step(a.rng, a.cfg, w, h)
	}

	a.surface.ClearRect(0, 0, w, h)
	for i := range a.particles {
		a.particles[i].draw(a.surface)
	}
	a.ticks++

	if a.running {
		a.handle = a.frames.Request(a.Tick)
	}
}

// Resize resizes the surface. Particle positions are left as they are; the
// wrap and recycle rules bring strays back.
func (a *Animator) Resize(width, height int) {
	a.surface.Resize(width, height)
}

// Particles returns a copy of the current particle state.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Particle gives direct access to the i-th particle.
func (a *Animator) Particle(i int) *Particle {
	return &a.particles[i]
}

func (a *Animator) Len() int {
	return len(a.particles)
}

// Ticks returns the number of completed ticks.
func (a *Animator) Ticks() uint64 {
	return a.ticks
}
