package truenetwork

import "time"

// FrameHandle identifies a pending frame request. The zero handle is never
// issued, so it can be used as "nothing pending".
type FrameHandle uint64

// FrameScheduler is the host's display-synchronisation primitive. A callback
// passed to RequestFrame runs once, on the next frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	fn     func()
}

// FrameQueue is a FrameScheduler driven by the page's Update loop. Each Tick
// runs the callbacks that were pending when the tick began; callbacks
// requested while ticking wait for the next Tick.
//
// Not safe for concurrent use. Everything runs on ebiten's update goroutine.
type FrameQueue struct {
	pending []frameRequest
	running []frameRequest
	nextID  FrameHandle
	frames  uint64
}

// RequestFrame schedules fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	q.nextID++
	q.pending = append(q.pending, frameRequest{handle: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a pending request. Unknown, already-run and zero
// handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel a sibling that is queued in the same tick.
	for i := range q.running {
		if q.running[i].handle == h {
			q.running[i].fn = nil
			return
		}
	}
}

// Tick runs one display frame's worth of callbacks.
func (q *FrameQueue) Tick() {
	q.frames++
	q.running, q.pending = q.pending, q.running[:0]
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
		}
	}
	q.running = q.running[:0]
}

// Pending returns the number of requests waiting for the next Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many times Tick has run.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}

// TimerHandle identifies a pending timer. Zero is never issued.
type TimerHandle uint64

type timer struct {
	handle    TimerHandle
	remaining time.Duration
	fn        func()
}

// Timers runs one-shot callbacks after a delay measured in page time, which
// advances only when the page ticks.
type Timers struct {
	timers []timer
	nextID TimerHandle
}

// AfterFunc schedules fn to run once d of page time has elapsed.
func (t *Timers) AfterFunc(d time.Duration, fn func()) TimerHandle {
	t.nextID++
	t.timers = append(t.timers, timer{handle: t.nextID, remaining: d, fn: fn})
	return t.nextID
}

// Cancel stops a pending timer. Unknown handles are ignored.
func (t *Timers) Cancel(h TimerHandle) {
	for i := range t.timers {
		if t.timers[i].handle == h {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return
		}
	}
}

// Advance moves page time forward by dt and fires every timer that expired,
// in scheduling order. Timers added by a firing callback wait for the next
// Advance.
func (t *Timers) Advance(dt time.Duration) {
	if len(t.timers) == 0 {
		return
	}
	var due []func()
	kept := t.timers[:0]
	for _, tm := range t.timers {
		tm.remaining -= dt
		if tm.remaining <= 0 {
			due = append(due, tm.fn)
			continue
		}
		kept = append(kept, tm)
	}
	t.timers = kept
	for _, fn := range due {
		fn()
	}
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	return len(t.timers)
}
