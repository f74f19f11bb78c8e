// SPDX-License-Identifier: EPL-2.0

package engine

// TouchPhase is the lifecycle phase of a touch event as delivered by the
// host's touch surface.
type TouchPhase uint8

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCancelled
)

// Touch delivers a touch event from the control context. Only TouchBegan has
// an effect: in record mode it re-arms capture from the start of the buffer,
// in play mode it selects a new region and speed from the touch position.
// Dragging does not retarget an active session.
//
// Coordinates outside the 10-bit surface are clamped. The id distinguishes
// concurrent touches on multi-touch hosts; this engine tracks a single
// session, so every began event re-arms it regardless of id.
func (e *Engine) Touch(id uint8, phase TouchPhase, x, y uint32) {
	_ = id

	if phase != TouchBegan {
		return
	}

	if x > touchMax {
		x = touchMax
	}
	if y > touchMax {
		y = touchMax
	}

	if e.params.depth() < 0 {
		e.pending.Store(&arm{record: true})
		return
	}

	readIdx, readEnd, speed := mapTouch(x, y, e.store.capacity())
	e.pending.Store(&arm{readIdx: readIdx, readEnd: readEnd, speed: speed})
}
