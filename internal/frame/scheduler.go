package frame

// Handle identifies a scheduled callback. The zero Handle never refers to one.
type Handle uint64

// Scheduler runs callbacks on the next display refresh.
type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type request struct {
	handle Handle
	fn     func()
}

// Loop is a cooperative Scheduler driven by the host's refresh: the host calls
// Advance once per frame (ebiten.Game.Update). Not safe for concurrent use.
type Loop struct {
	next    Handle
	pending []request
	running []request
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Request(fn func()) Handle {
	l.next++
	l.pending = append(l.pending, request{handle: l.next, fn: fn})
	return l.next
}

// Cancel drops a pending callback. Unknown, already-run and already-cancelled
// handles are ignored.
func (l *Loop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i := range l.pending {
		if l.pending[i].handle == h {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// Cancelled from inside a callback of the current Advance.
	for i := range l.running {
		if l.running[i].handle == h {
			l.running[i].fn = nil
			return
		}
	}
}

// Advance runs the callbacks requested before this call, in request order.
// Callbacks requested while advancing run on the next call.
func (l *Loop) Advance() {
	if len(l.pending) == 0 {
		return
	}
	l.running, l.pending = l.pending, l.running[:0]
	for i := range l.running {
		if fn := l.running[i].fn; fn != nil {
			l.running[i].fn = nil
			fn()
		}
	}
	l.running = l.running[:0]
}

// Pending returns the number of callbacks waiting for the next Advance.
func (l *Loop) Pending() int {
	return len(l.pending)
}
