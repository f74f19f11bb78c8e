// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"github.com/gopxl/beep/v2"

	"github.com/ik5/padtape/engine"
)

// blockFrames is how many stereo frames each Process call renders. The
// speaker asks for arbitrary sample counts; the streamer feeds the engine in
// fixed blocks and slices the tail.
const blockFrames = 512

// Streamer adapts a live engine into a beep.Streamer so the speaker can pull
// rendered audio from it. The streamer owns the engine's Process calls while
// it is playing; touch and parameter changes arrive from other goroutines
// through the engine's control surface.
//
// A monitor stream never ends: when the armed region is exhausted the engine
// leaves the block silent and the stream keeps running until the speaker is
// torn down.
type Streamer struct {
	e   *engine.Engine
	in  []float32
	out []float32
}

// New returns a streamer over e. The engine must outlive the streamer.
func New(e *engine.Engine) *Streamer {
	return &Streamer{
		e:   e,
		in:  make([]float32, blockFrames*2),
		out: make([]float32, blockFrames*2),
	}
}

// Stream renders len(samples) stereo frames through the engine. It always
// fills the whole slice and never reports completion.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	done := 0
	for done < len(samples) {
		frames := len(samples) - done
		if frames > blockFrames {
			frames = blockFrames
		}

		out := s.out[:frames*2]
		clear(out)
		s.e.Process(s.in[:frames*2], out)

		for f := 0; f < frames; f++ {
			samples[done+f][0] = float64(out[2*f])
			samples[done+f][1] = float64(out[2*f+1])
		}
		done += frames
	}

	return len(samples), true
}

// Err reports the streamer's error state. Rendering cannot fail, so it is
// always nil.
func (s *Streamer) Err() error { return nil }

var _ beep.Streamer = (*Streamer)(nil)
