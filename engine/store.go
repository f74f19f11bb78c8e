// SPDX-License-Identifier: EPL-2.0

package engine

// DefaultBufferLen is the default sample buffer length in float32 samples
// (interleaved stereo, so half as many frames). At 48 kHz stereo this holds
// about 2.7 seconds of audio.
const DefaultBufferLen = 0x40000

// store owns the engine's sample buffer: contiguous interleaved stereo
// float32 samples, zero-filled at allocation, never resized. All reads and
// writes go through the Process loop; there is no other mutation path.
type store struct {
	buf []float32
}

// newStore obtains a zero-filled buffer of length n from the host allocator.
// n must be positive and a multiple of 16 so that all 8 quantized region
// bounds are frame-aligned.
func newStore(alloc func(int) []float32, n int) (*store, error) {
	if n <= 0 || n%16 != 0 {
		return nil, ErrCapacity
	}
	if alloc == nil {
		return nil, ErrMemory
	}

	buf := alloc(n)
	if buf == nil || len(buf) < n {
		return nil, ErrMemory
	}
	// Host allocators are expected to zero the buffer, but the engine's
	// playback contract depends on it, so clear unconditionally.
	clear(buf[:n])

	return &store{buf: buf[:n]}, nil
}

// capacity returns the buffer length in float32 samples.
func (s *store) capacity() uint32 { return uint32(len(s.buf)) }

// release drops the buffer reference. Host-allocated memory is reclaimed by
// the host on teardown; there is nothing else to do.
func (s *store) release() { s.buf = nil }
