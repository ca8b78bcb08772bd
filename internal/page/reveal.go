package page

type revealTarget struct {
	id       string
	block    Block
	revealed bool
	progress float64
}

// Observer reveals sections the first time enough of them is visible.
// The viewport used for the check is shrunk by bottomMargin, and a section
// counts as visible once threshold of its height intersects it. Revealed
// sections are not observed again.
type Observer struct {
	threshold    float64
	bottomMargin float64
	duration     float64

	targets []*revealTarget
	byID    map[string]*revealTarget
}

func NewObserver(threshold, bottomMargin, duration float64) *Observer {
	return &Observer{
		threshold:    threshold,
		bottomMargin: bottomMargin,
		duration:     duration,
		byID:         make(map[string]*revealTarget),
	}
}

// Observe registers a section. Observing an id twice replaces its block.
func (o *Observer) Observe(id string, b Block) {
	if t, ok := o.byID[id]; ok {
		t.block = b
		return
	}
	t := &revealTarget{id: id, block: b}
	o.targets = append(o.targets, t)
	o.byID[id] = t
}

// Check tests the pending sections against the viewport [scrollY,
// scrollY+viewHeight) and returns the ids revealed by this call.
func (o *Observer) Check(scrollY, viewHeight float64) []string {
	top := scrollY
	bottom := scrollY + viewHeight - o.bottomMargin
	if bottom <= top {
		return nil
	}

	var revealed []string
	for _, t := range o.targets {
		if t.revealed {
			continue
		}
		if ratio(t.block, top, bottom) >= o.threshold && intersects(t.block, top, bottom) {
			t.revealed = true
			revealed = append(revealed, t.id)
		}
	}
	return revealed
}

func intersects(b Block, top, bottom float64) bool {
	return b.Top < bottom && b.Bottom() > top
}

func ratio(b Block, top, bottom float64) float64 {
	if b.Height <= 0 {
		if b.Top >= top && b.Top < bottom {
			return 1
		}
		return 0
	}
	lo := max(b.Top, top)
	hi := min(b.Bottom(), bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / b.Height
}

// Update advances the reveal animation of revealed sections by dt seconds.
func (o *Observer) Update(dt float64) {
	for _, t := range o.targets {
		if !t.revealed || t.progress >= 1 {
			continue
		}
		if o.duration <= 0 {
			t.progress = 1
			continue
		}
		t.progress += dt / o.duration
		if t.progress > 1 {
			t.progress = 1
		}
	}
}

// Progress returns the eased reveal progress of a section in [0, 1].
// Sections that were never observed are fully shown.
func (o *Observer) Progress(id string) float64 {
	t, ok := o.byID[id]
	if !ok {
		return 1
	}
	return EaseOutCubic(t.progress)
}

func (o *Observer) Revealed(id string) bool {
	t, ok := o.byID[id]
	return !ok || t.revealed
}

// Pending returns the number of sections still waiting to be revealed.
func (o *Observer) Pending() int {
	n := 0
	for _, t := range o.targets {
		if !t.revealed {
			n++
		}
	}
	return n
}
