// Package carousel implements the sliding-window state machine behind the
// course carousels.
//
// An [Engine] owns a window of visibleCount items positioned by a current
// index over an ordered course list. It is deliberately free of timers and
// terminal concerns: callers decide when a tick, key press, drag, or resize
// happens and feed it in, which keeps the wrap-around, clamping, and swipe
// dead-zone behavior directly testable. The autoplay schedule lives in the
// UI layer.
package carousel

import "coursedeck/internal/models"

// SwipeThreshold is the horizontal drag distance that must be exceeded for
// a swipe to advance the window. A delta of exactly this many units is
// still inside the dead zone, so taps and jitter never trigger movement.
const SwipeThreshold = 150

// Viewport width breakpoints for the visible-item count.
const (
	narrowWidth = 768
	mediumWidth = 992
)

// VisibleCount returns how many items fit at the given viewport width.
// Pure function of the width alone.
func VisibleCount(width int) int {
	switch {
	case width < narrowWidth:
		return 1
	case width < mediumWidth:
		return 2
	default:
		return 3
	}
}

// Engine holds the carousel state for one item list.
type Engine struct {
	items   []models.Course
	index   int
	visible int

	touchStart float64
	touchEnd   float64
}

// New creates an engine over items sized for the given viewport width.
func New(items []models.Course, width int) *Engine {
	return &Engine{
		items:   items,
		visible: VisibleCount(width),
	}
}

// maxIndex is the highest index that still leaves a full window of items
// to the right (zero when the list fits entirely).
func (e *Engine) maxIndex() int {
	max := len(e.items) - e.visible
	if max < 0 {
		return 0
	}
	return max
}

// clamp reapplies the index invariant after items or visible count change.
func (e *Engine) clamp() {
	if e.index < 0 {
		e.index = 0
	}
	if max := e.maxIndex(); e.index > max {
		e.index = max
	}
}

// SetItems replaces the item list. The window resets to the start, matching
// the engine being recreated whenever its input list changes identity.
func (e *Engine) SetItems(items []models.Course) {
	e.items = items
	e.index = 0
	e.touchStart = 0
	e.touchEnd = 0
}

// Resize recomputes the visible count for a new viewport width. The index
// is not reset, but the invariant clamp may shift the window back into
// range.
func (e *Engine) Resize(width int) {
	e.visible = VisibleCount(width)
	e.clamp()
}

// Advance moves the window by direction (+1 or -1), wrapping below zero to
// maxIndex and above maxIndex to zero, so the carousel never sticks at an
// end.
func (e *Engine) Advance(direction int) {
	if len(e.items) == 0 {
		return
	}

	max := e.maxIndex()
	next := e.index + direction
	switch {
	case next < 0:
		next = max
	case next > max:
		next = 0
	}
	e.index = next
}

// Next advances the window forward one position.
func (e *Engine) Next() { e.Advance(1) }

// Prev advances the window backward one position.
func (e *Engine) Prev() { e.Advance(-1) }

// TouchStart records the start of a drag gesture. The end coordinate is
// seeded with the same position so a gesture with no movement has zero
// delta and stays inside the dead zone.
func (e *Engine) TouchStart(x float64) {
	e.touchStart = x
	e.touchEnd = x
}

// TouchMove records the latest drag position.
func (e *Engine) TouchMove(x float64) {
	e.touchEnd = x
}

// TouchEnd finishes a gesture and returns the direction advanced: +1 for a
// leftward swipe, -1 for a rightward swipe, 0 when the delta stayed inside
// the dead zone.
func (e *Engine) TouchEnd() int {
	delta := e.touchStart - e.touchEnd
	e.touchStart = 0
	e.touchEnd = 0

	switch {
	case delta > SwipeThreshold:
		e.Advance(1)
		return 1
	case delta < -SwipeThreshold:
		e.Advance(-1)
		return -1
	}
	return 0
}

// Empty reports whether there is nothing to render. Callers show a
// placeholder and disable navigation.
func (e *Engine) Empty() bool {
	return len(e.items) == 0
}

// CanScroll reports whether the list overflows the window. It gates both
// the manual controls and autoplay: when everything fits there is nothing
// to advance through.
func (e *Engine) CanScroll() bool {
	return len(e.items) > e.visible
}

// Index returns the current window position.
func (e *Engine) Index() int { return e.index }

// Visible returns the current visible-item count.
func (e *Engine) Visible() int { return e.visible }

// Len returns the item count.
func (e *Engine) Len() int { return len(e.items) }

// Window returns the items currently inside the window.
func (e *Engine) Window() []models.Course {
	if len(e.items) == 0 {
		return nil
	}

	end := e.index + e.visible
	if end > len(e.items) {
		end = len(e.items)
	}
	return e.items[e.index:end]
}

// Offset returns the track translation in percent for the current index:
// index * (100 / visibleCount).
func (e *Engine) Offset() float64 {
	return float64(e.index) * (100.0 / float64(e.visible))
}

// TrackWidth returns the full track width in percent relative to the
// viewport: (len / visibleCount) * 100.
func (e *Engine) TrackWidth() float64 {
	return float64(len(e.items)) / float64(e.visible) * 100.0
}
