// SPDX-License-Identifier: EPL-2.0

// Package engine implements a touch-driven stereo sample capture/playback
// engine.
//
// The engine owns one fixed-capacity sample buffer for its whole lifetime.
// A bipolar depth parameter selects the mode each audio block: negative depth
// records incoming frames into the buffer, non-negative depth plays frames
// back from a touch-selected region of it.
//
// # Touch Surface
//
// Touch coordinates cover a 1024x1024 surface. On a touch-down in play mode
// the horizontal axis is quantized into 8 equal regions of the buffer and the
// vertical axis into 4 playback speeds (1x to 4x). A touch-down in record
// mode re-arms capture from the start of the buffer. All other touch phases
// are ignored.
//
// # Real-Time Contract
//
// Process is designed for a real-time audio thread: it never allocates,
// never locks, and every loop is bounded by the block's frame count. Buffer
// exhaustion and region exhaustion are silent steady states, not errors.
// Control-side calls (SetParameter, Touch) may run concurrently with
// Process; cursor re-arms are handed to the audio thread through a
// single-producer/single-consumer slot so the audio thread never observes a
// half-written cursor.
//
// # Lifecycle
//
//	e, err := engine.New(host.DefaultDescriptor())
//	if err != nil {
//	    // distinct sentinel per startup failure, see errors.go
//	}
//	defer e.Teardown()
//
//	e.SetParameter(engine.ParamDepth, -1000) // record
//	e.Touch(0, engine.TouchBegan, 0, 0)      // arm capture
//	e.Process(in, out)                       // per audio block
//
// Playback of the captured material:
//
//	e.SetParameter(engine.ParamDepth, 1000) // play
//	e.Touch(0, engine.TouchBegan, 896, 768) // region 7, speed 4x
//	e.Process(in, out)
package engine
