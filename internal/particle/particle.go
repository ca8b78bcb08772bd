package particle

import (
	"image/color"
	"math"

	"github.com/iburimskiy/heartfield/internal/canvas"
	"github.com/iburimskiy/heartfield/internal/config"
)

// Kind is the shape a particle is drawn with.
type Kind int

const (
	Heart Kind = iota
	Confetti
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Heart:
		return "heart"
	case Confetti:
		return "confetti"
	}
	return "unknown"
}

// Particle is one floating heart or confetti piece. Size, speeds, color, kind
// and opacity are fixed at creation; recycling only moves the particle.
type Particle struct {
	X, Y          float64
	Size          float64
	SpeedX        float64
	SpeedY        float64
	Rotation      float64 // degrees
	RotationSpeed float64
	Wobble        float64 // radians
	Color         color.RGBA
	Kind          Kind
	Opacity       float64
}

// Rand is the random source used for particle generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Config holds the particle field constants.
type Config struct {
	Count             int
	SizeMin           float64
	SizeSpan          float64
	SpeedYMin         float64
	SpeedYSpan        float64
	SpeedXSpan        float64
	RotationSpan      float64
	RotationSpeedSpan float64
	OpacityMin        float64
	OpacitySpan       float64
	WobbleStep        float64
	WobbleAmplitude   float64
	Margin            float64
	Palette           []color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Count:             config.ParticleCount,
		SizeMin:           config.SizeMin,
		SizeSpan:          config.SizeSpan,
		SpeedYMin:         config.SpeedYMin,
		SpeedYSpan:        config.SpeedYSpan,
		SpeedXSpan:        config.SpeedXSpan,
		RotationSpan:      config.RotationSpan,
		RotationSpeedSpan: config.RotationSpeedSpan,
		OpacityMin:        config.OpacityMin,
		OpacitySpan:       config.OpacitySpan,
		WobbleStep:        config.WobbleStep,
		WobbleAmplitude:   config.WobbleAmplitude,
		Margin:            config.RecycleMargin,
		Palette:           config.Palette,
	}
}

// pick returns a uniform index in [0, n).
func pick(rng Rand, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// spawn creates a particle below the fold of a width x height surface.
func spawn(rng Rand, cfg Config, width, height float64) Particle {
	kind := Kind(pick(rng, int(kindCount)))
	p := Particle{
		X:             rng.Float64() * width,
		Y:             rng.Float64()*height + height,
		Size:          rng.Float64()*cfg.SizeSpan + cfg.SizeMin,
		SpeedY:        rng.Float64()*cfg.SpeedYSpan + cfg.SpeedYMin,
		SpeedX:        rng.Float64()*cfg.SpeedXSpan - cfg.SpeedXSpan/2,
		Rotation:      rng.Float64() * cfg.RotationSpan,
		RotationSpeed: rng.Float64()*cfg.RotationSpeedSpan - cfg.RotationSpeedSpan/2,
		Kind:          kind,
	}
	if len(cfg.Palette) > 0 {
		p.Color = cfg.Palette[pick(rng, len(cfg.Palette))]
	}
	p.Opacity = rng.Float64()*cfg.OpacitySpan + cfg.OpacityMin
	p.Wobble = rng.Float64() * math.Pi * 2
	return p
}

// step advances one tick of motion and applies the recycle and wrap rules.
func (p *Particle) step(rng Rand, cfg Config, width, height float64) {
	p.Y -= p.SpeedY
	p.X += p.SpeedX + math.Sin(p.Wobble)*cfg.WobbleAmplitude
	p.Rotation += p.RotationSpeed
	p.Wobble += cfg.WobbleStep

	if p.Y < -cfg.Margin {
		p.Y = height + cfg.Margin
		p.X = rng.Float64() * width
	}

	if p.X < -cfg.Margin {
		p.X = width + cfg.Margin
	}
	if p.X > width+cfg.Margin {
		p.X = -cfg.Margin
	}
}

func (p *Particle) draw(s canvas.Surface) {
	s.Save()
	s.Translate(p.X, p.Y)
	s.Rotate(p.Rotation * math.Pi / 180)
	s.SetGlobalAlpha(p.Opacity)
	s.SetFillColor(p.Color)

	if p.Kind == Heart {
		drawHeart(s, p.Size)
	} else {
		drawConfetti(s, p.Size)
	}

	s.Restore()
}

func drawHeart(s canvas.Surface, size float64) {
	h := size / 2
	s.FillBezier(canvas.Point{X: 0, Y: h / 2},
		canvas.Cubic{
			C1: canvas.Point{X: -h, Y: -h / 2},
			C2: canvas.Point{X: -h, Y: -h},
			To: canvas.Point{X: 0, Y: -h},
		},
		canvas.Cubic{
			C1: canvas.Point{X: h, Y: -h},
			C2: canvas.Point{X: h, Y: -h / 2},
			To: canvas.Point{X: 0, Y: h / 2},
		},
	)
}

func drawConfetti(s canvas.Surface, size float64) {
	s.FillRect(-size/2, -size/4, size, size/2)
}
