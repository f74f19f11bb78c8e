// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests. The
// generators satisfy audio.Source without importing it, so any package in
// the module can use them.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates totalFrames frames of synthetic audio from a
// per-sample waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32
}

// NewMockSource builds a source producing totalFrames frames; waveform is
// called with the frame index and channel for every sample.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource produces all-zero frames.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineSource produces a sine wave at the given frequency on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource produces the same value on every sample.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

// NewRampSource produces frames whose index is recoverable from the sample
// values: frame f carries f/1000 on every channel. Useful for asserting
// sample ordering through capture and playback.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(frame) / 1000
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if left := m.totalFrames - m.generated; frames > left {
		frames = left
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
