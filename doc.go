// SPDX-License-Identifier: EPL-2.0

// Package padtape is a touch-driven audio capture and playback engine.
//
// The engine owns one large sample buffer. A touch surface divides it into
// eight equal regions: a touch-down in play mode starts playback at the
// region the horizontal position selects, at a speed the vertical position
// selects (1x to 4x), while a touch-down in record mode rewinds the write
// cursor and starts capturing incoming audio. The engine core lives in the
// engine package; this root package adds offline helpers on top of it.
//
// # Packages
//
//   - engine: the real-time core (Process, parameters, touch handling)
//   - host: descriptor and version handshake between host and engine
//   - audio: Source interface, resampler, stereo mixer, decoder registry
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - monitor: beep streamer adapter for live playback
//
// # Quick Start
//
// Load a file into the engine and render a region:
//
//	e, _ := engine.New(host.DefaultDescriptor())
//	defer e.Teardown()
//
//	file, _ := os.Open("loop.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//	frames, _ := padtape.Capture(e, src, 256)
//
//	// Play the third region at double speed.
//	out, _ := padtape.RenderRegion(e, 320, 300, frames, 256)
//
// The engine renders at 48 kHz stereo only; Capture resamples and mixes
// sources to match.
package padtape
