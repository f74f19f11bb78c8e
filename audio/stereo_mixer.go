// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts any Source to interleaved stereo, the only channel
// geometry the capture engine accepts. Mono input is duplicated into both
// channels, stereo passes through, and wider layouts are folded down by
// averaging the left half of the channels into L and the right half into R.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved stereo. dst length must be even.
// Returns the number of float32 values written.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels == 0 {
		return 0, ErrNoChannels
	}
	if channels == 2 {
		// Already stereo, read straight through.
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	samplesNeeded := frames * channels

	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / channels

	switch channels {
	case 1:
		for f := range got {
			v := m.tmp[f]
			dst[2*f] = v
			dst[2*f+1] = v
		}
	default:
		// Fold the left half of the channels into L, the right half
		// into R. Odd middle channels contribute to both sides.
		half := channels / 2
		rStart := channels - half
		invL := float32(1) / float32(rStart)
		invR := float32(1) / float32(channels-half)
		for f := range got {
			base := f * channels
			var l, r float32
			for c := 0; c < rStart; c++ {
				l += m.tmp[base+c]
			}
			for c := half; c < channels; c++ {
				r += m.tmp[base+c]
			}
			dst[2*f] = l * invL
			dst[2*f+1] = r * invR
		}
	}

	return got * 2, err
}
