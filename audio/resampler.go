// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/padtape/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation over a sliding 4-frame window. Works on interleaved samples
// and preserves the channel count. When downsampling, a one-pole low-pass
// tames aliasing before interpolation.
//
// The capture path uses it to bring decoded material to the engine's fixed
// 48 kHz rate.
type Resampler struct {
	src      Source
	dstRate  float64
	ratio    float64 // source samples consumed per output sample
	channels int

	// window holds 4 consecutive frames; interpolation happens between
	// window[1] and window[2] at fractional position pos.
	window    [4][]float32
	haveFrame [4]bool
	pos       float64
	primed    bool
	eof       bool

	srcBuf []float32

	// anti-alias filter state, active only when downsampling
	filterOn    bool
	filterAlpha float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		filterOn:    ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the window with the first frames of the stream, duplicating
// the last available frame when the source is shorter than the window.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf)
		if n > 0 {
			copy(r.window[i], r.srcBuf[:n])
			r.haveFrame[i] = true
			if i == 0 && r.filterOn {
				copy(r.filterState, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.haveFrame[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// advance shifts the window one frame forward, reading the next source frame
// into window[3] and filtering it when the low-pass is active.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.haveFrame[0], r.haveFrame[1], r.haveFrame[2] = r.haveFrame[1], r.haveFrame[2], r.haveFrame[3]

	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		copy(r.window[3], r.srcBuf[:n])
		r.haveFrame[3] = true

		if r.filterOn {
			for c := 0; c < r.channels; c++ {
				r.window[3][c] = r.filterAlpha*r.window[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.window[3][c]
			}
		}
	} else {
		r.haveFrame[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.haveFrame[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate. dst length must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.haveFrame[1] || !r.haveFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y0 := y1
			if r.haveFrame[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.haveFrame[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
