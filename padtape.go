// SPDX-License-Identifier: EPL-2.0

package padtape

import (
	"errors"
	"io"

	"github.com/ik5/padtape/audio"
	"github.com/ik5/padtape/engine"
)

// EngineRate is the only sample rate the engine renders at. Sources at any
// other rate are resampled before capture.
const EngineRate = 48000

// Capture records an audio source into the engine's sample buffer.
//
// The source is resampled to 48 kHz and mixed to stereo as needed, the engine
// is armed for recording (full negative depth plus a touch-down), and blocks
// of blockFrames stereo frames are fed through Process until the source is
// exhausted or the buffer is full. It returns the number of stereo frames
// captured.
//
// Capture drives Process from the calling goroutine, so it must not run
// concurrently with a live render callback on the same engine.
func Capture(e *engine.Engine, src audio.Source, blockFrames int) (int, error) {
	if e == nil {
		return 0, ErrNilEngine
	}
	if src == nil {
		return 0, ErrNilSource
	}
	if blockFrames <= 0 {
		return 0, ErrInvalidBlock
	}

	pipe := src
	if pipe.SampleRate() != EngineRate {
		pipe = audio.NewResampler(pipe, EngineRate)
	}
	if pipe.Channels() != 2 {
		pipe = audio.NewStereoMixer(pipe)
	}

	e.SetParameter(engine.ParamDepth, -1000)
	e.Touch(0, engine.TouchBegan, 0, 0)

	in := make([]float32, blockFrames*2)
	out := make([]float32, blockFrames*2)
	full := e.BufferLen() / 2

	for {
		n, err := pipe.ReadSamples(in)
		n -= n % 2
		// The first Process call consumes the record arm even when the
		// source turned out to be empty.
		e.Process(in[:n], out[:n])

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return e.RecordedFrames(), err
		}
		if e.RecordedFrames() >= full {
			break
		}
	}

	return e.RecordedFrames(), nil
}

// RenderRegion plays back one touch region offline and returns the rendered
// output as interleaved stereo.
//
// The engine is put in play mode, a touch-down at (x, y) selects the region
// and speed, and frames stereo frames are rendered in blocks of blockFrames.
// Output frames past the end of the region come back as silence.
//
// Like Capture, RenderRegion drives Process directly and must not race a
// live render callback.
func RenderRegion(e *engine.Engine, x, y uint32, frames, blockFrames int) ([]float32, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	if frames < 0 || blockFrames <= 0 {
		return nil, ErrInvalidBlock
	}

	if e.ParameterValue(engine.ParamDepth) < 0 {
		e.SetParameter(engine.ParamDepth, 0)
	}
	e.Touch(0, engine.TouchBegan, x, y)

	rendered := make([]float32, frames*2)
	in := make([]float32, blockFrames*2)
	for off := 0; off < len(rendered); {
		block := len(rendered) - off
		if blockFrames*2 < block {
			block = blockFrames * 2
		}
		e.Process(in[:block], rendered[off:off+block])
		off += block
	}

	return rendered, nil
}
