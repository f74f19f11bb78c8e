// SPDX-License-Identifier: EPL-2.0

// Package monitor bridges the engine to a beep playback pipeline.
//
// It exposes the engine's render loop as a beep.Streamer so hosts can route
// live output through gopxl/beep's speaker:
//
//	e, _ := engine.New(host.DefaultDescriptor())
//	speaker.Init(beep.SampleRate(48000), 4800)
//	speaker.Play(monitor.New(e))
//
// Touches and parameter changes keep working while the speaker pulls audio;
// the engine's control surface is safe to drive from other goroutines.
package monitor
