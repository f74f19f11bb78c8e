// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync/atomic"

	"github.com/ik5/padtape/host"
)

// Mode is the per-block operating mode, derived from the sign of the depth
// parameter. It is never stored; Process recomputes it every block.
type Mode uint8

const (
	ModePlay Mode = iota
	ModeRecord
)

func (m Mode) String() string {
	if m == ModeRecord {
		return "record"
	}
	return "play"
}

// Engine is a single capture/playback session over one owned sample buffer.
// Process belongs to the real-time audio thread; SetParameter and Touch may
// be called concurrently from a control context. All other methods are
// lifecycle calls the host makes while the audio thread is not inside
// Process.
type Engine struct {
	store   *store
	cursor  Cursor
	params  params
	pending atomic.Pointer[arm]

	desc host.Descriptor
}

// Option configures engine construction.
type Option func(*config)

type config struct {
	bufferLen int
}

// WithBufferLen overrides the sample buffer length in float32 samples. The
// length must be positive and a multiple of 16. Mainly useful for tests and
// short-session hosts; the default is DefaultBufferLen.
func WithBufferLen(n int) Option {
	return func(c *config) { c.bufferLen = n }
}

// New validates the host descriptor, allocates the sample buffer through the
// host's allocator hook, and returns a ready engine. Each validation failure
// reports a distinct sentinel error and is fatal to the session.
func New(desc *host.Descriptor, opts ...Option) (*Engine, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if desc.Target != host.EngineTarget {
		return nil, ErrTargetMismatch
	}
	if !host.APICompat(host.EngineAPI, desc.API) {
		return nil, ErrAPIVersion
	}
	if desc.SampleRate != 48000 {
		return nil, ErrSampleRate
	}
	if desc.InputChannels != 2 || desc.OutputChannels != 2 {
		return nil, ErrGeometry
	}

	cfg := config{bufferLen: DefaultBufferLen}
	for _, opt := range opts {
		opt(&cfg)
	}

	st, err := newStore(desc.Hooks.Alloc, cfg.bufferLen)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		store: st,
		desc:  *desc,
	}
	e.cursor = initialCursor(st.capacity())
	e.params.reset()

	return e, nil
}

// Mode returns the operating mode the next Process call will derive from the
// current depth parameter.
func (e *Engine) Mode() Mode {
	if e.params.depth() < 0 {
		return ModeRecord
	}
	return ModePlay
}

// BufferLen returns the sample buffer length in float32 samples.
func (e *Engine) BufferLen() int { return int(e.store.capacity()) }

// RecordedFrames returns how many stereo frames the current capture session
// has written so far. Before the first record arm it reports the full buffer.
func (e *Engine) RecordedFrames() int { return int(e.cursor.writeIdx) / 2 }

// Process runs one audio block of len(out)/2 stereo frames. in and out are
// interleaved stereo buffers of equal length.
//
// In record mode incoming frames are appended to the buffer until it is
// full; further input is dropped silently. The output buffer is left
// untouched. In play mode frames are copied from the armed region into out,
// advancing by 2*speed samples per frame; once the region or the buffer is
// exhausted the remaining output frames are left as the host provided them.
//
// Process never allocates, never blocks, and never returns an error: all
// boundary conditions are silent steady states.
func (e *Engine) Process(in, out []float32) {
	if a := e.pending.Swap(nil); a != nil {
		e.cursor.apply(a)
	}

	frames := len(out) / 2
	buf := e.store.buf
	// Writing a stereo pair at capacity-1 would land one sample past the
	// end, so the last valid pair offset is capacity-2.
	last := e.store.capacity() - 2

	if e.params.depth() < 0 {
		if n := len(in) / 2; n < frames {
			frames = n
		}

		w := e.cursor.writeIdx
		for f := 0; f < frames; f++ {
			if w <= last {
				buf[w] = in[2*f]
				buf[w+1] = in[2*f+1]
				w += 2
			}
		}
		e.cursor.writeIdx = w
		return
	}

	r := e.cursor.readIdx
	end := e.cursor.readEnd
	step := uint32(2 * e.cursor.speed)
	for f := 0; f < frames; f++ {
		if r <= end && r <= last {
			out[2*f] = buf[r]
			out[2*f+1] = buf[r+1]
			r += step
		}
	}
	e.cursor.readIdx = r
}

// Reset clears transient session state: the cursor and any pending touch
// re-arm. Parameter values and buffer contents are preserved. The host calls
// Reset while the audio thread is idle.
func (e *Engine) Reset() {
	e.pending.Store(nil)
	e.cursor = initialCursor(e.store.capacity())
}

// Suspend notifies the engine that the render callback will stop being
// called. State is held across suspend; nothing to do.
func (e *Engine) Suspend() {}

// Resume notifies the engine that rendering restarts. The buffer is kept as
// is; a resumed session continues where it left off.
func (e *Engine) Resume() {}

// Teardown releases the sample buffer back to the host. The engine must not
// be used afterwards.
func (e *Engine) Teardown() {
	e.store.release()
}

// SetTempo receives host tempo updates (16.16 fixed-point BPM). The engine
// is free-running and ignores tempo.
func (e *Engine) SetTempo(tempo uint32) { _ = tempo }

// TempoTick receives 4ppqn clock ticks from the host. Ignored.
func (e *Engine) TempoTick(counter uint32) { _ = counter }
