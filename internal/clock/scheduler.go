package clock

import "time"

// Scheduler hands out one tick at a time, like a browser's animation frame
// request.
type Scheduler interface {
	Now() time.Time
	// RequestTick arranges for fn to run once on a later frame with that
	// frame's timestamp. The returned cancel func withdraws the request.
	RequestTick(fn func(now time.Time)) (cancel func())
}

// FrameLoop is a Scheduler pumped by the host: each call to Frame delivers
// the pending request, if any.
type FrameLoop struct {
	now     func() time.Time
	pending func(time.Time)
	seq     uint64
}

// NewFrameLoop uses now as its time source; nil means time.Now.
func NewFrameLoop(now func() time.Time) *FrameLoop {
	if now == nil {
		now = time.Now
	}
	return &FrameLoop{now: now}
}

func (l *FrameLoop) Now() time.Time { return l.now() }

func (l *FrameLoop) RequestTick(fn func(now time.Time)) func() {
	l.seq++
	id := l.seq
	l.pending = fn
	return func() {
		if l.seq == id {
			l.pending = nil
		}
	}
}

// Pending reports whether a tick has been requested and not yet delivered.
func (l *FrameLoop) Pending() bool { return l.pending != nil }

// Frame delivers the pending tick at the current time and reports whether
// one was delivered.
func (l *FrameLoop) Frame() bool {
	return l.FrameAt(l.now())
}

// FrameAt delivers the pending tick with an explicit timestamp.
func (l *FrameLoop) FrameAt(now time.Time) bool {
	fn := l.pending
	if fn == nil {
		return false
	}
	l.pending = nil
	fn(now)
	return true
}

// ManualTime is a clock that only moves when told to.
type ManualTime struct {
	t time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{t: start}
}

func (m *ManualTime) Now() time.Time { return m.t }

func (m *ManualTime) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}
