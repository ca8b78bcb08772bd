package page

// Scroller keeps the vertical scroll offset of the page. Wheel scrolling is
// immediate; ScrollTo animates with an ease-in-out curve.
type Scroller struct {
	offset   float64
	view     float64
	content  float64
	duration float64

	animating bool
	from, to  float64
	elapsed   float64
}

func NewScroller(duration float64) *Scroller {
	return &Scroller{duration: duration}
}

// Resize updates the viewport and content heights and re-clamps the offset.
func (s *Scroller) Resize(view, content float64) {
	s.view, s.content = view, content
	s.offset = s.clamp(s.offset)
	if s.animating {
		s.to = s.clamp(s.to)
	}
}

func (s *Scroller) MaxOffset() float64 {
	if m := s.content - s.view; m > 0 {
		return m
	}
	return 0
}

func (s *Scroller) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if m := s.MaxOffset(); y > m {
		return m
	}
	return y
}

// ScrollBy moves the offset immediately and cancels a running animation.
func (s *Scroller) ScrollBy(delta float64) {
	s.animating = false
	s.offset = s.clamp(s.offset + delta)
}

// ScrollTo starts a smooth scroll to y.
func (s *Scroller) ScrollTo(y float64) {
	target := s.clamp(y)
	if s.duration <= 0 {
		s.animating = false
		s.offset = target
		return
	}
	s.from = s.offset
	s.to = target
	s.elapsed = 0
	s.animating = target != s.offset
}

// Update advances a running smooth scroll by dt seconds.
func (s *Scroller) Update(dt float64) {
	if !s.animating {
		return
	}
	s.elapsed += dt
	t := s.elapsed / s.duration
	if t >= 1 {
		s.offset = s.to
		s.animating = false
		return
	}
	s.offset = lerp(s.from, s.to, EaseInOutCubic(t))
}

func (s *Scroller) Offset() float64 {
	return s.offset
}

func (s *Scroller) Animating() bool {
	return s.animating
}
