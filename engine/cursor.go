// SPDX-License-Identifier: EPL-2.0

package engine

// Cursor is the mutable read/write position state of a session. Indices are
// offsets into the sample buffer in float32 samples and are always even, so
// stereo pairs move together.
//
// writeIdx advances during record mode and saturates at the end of the
// buffer. readIdx advances during play mode by 2*speed per frame and stops
// once it passes readEnd or the end of the buffer. A new touch-down replaces
// the relevant fields wholesale (see arm).
type Cursor struct {
	writeIdx uint32
	readIdx  uint32
	readEnd  uint32
	speed    float32
}

// initialCursor is the state before any touch has armed a session: the write
// cursor parked at the end (nothing records until a record touch-down) and
// the read cursor at a zero-length region over silence.
func initialCursor(capacity uint32) Cursor {
	return Cursor{writeIdx: capacity}
}

// arm is a pending cursor transition published by the control context and
// consumed by the audio thread at the start of the next block.
type arm struct {
	record  bool // reset writeIdx, leave read state alone
	readIdx uint32
	readEnd uint32
	speed   float32
}

// apply folds a consumed arm into the cursor. Record arms never touch read
// state and play arms never touch write state.
func (c *Cursor) apply(a *arm) {
	if a.record {
		c.writeIdx = 0
		return
	}
	c.readIdx = a.readIdx
	c.readEnd = a.readEnd
	c.speed = a.speed
}
