// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM stream plumbing that feeds the padtape
// engine.
//
// The engine consumes interleaved stereo float32 blocks at 48 kHz. Decoded
// material rarely arrives in that shape, so this package supplies the
// adapters that bring an arbitrary decoded stream into engine form:
//   - Source, the module-wide streaming PCM interface
//   - Resampler, a cubic-interpolation sample rate converter
//   - StereoMixer, a channel adapter producing interleaved stereo
//   - Registry, a decoder registry keyed by format name
//
// # Source Interface
//
// All decoders and processors implement Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0]. ReadSamples returns the number of
// float32 values written, and io.EOF once the stream is finished.
//
// # Feeding The Engine
//
// A typical capture pipeline:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	stereo := audio.NewStereoMixer(audio.NewResampler(src, 48000))
//	// stereo now yields interleaved stereo float32 at 48 kHz
//
// The padtape root package wraps this pipeline in Capture.
//
// # Registry
//
// The Registry maps format names ("wav", "mp3", ...) to decoders so callers
// can pick a decoder from a file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("loop.wav")
//
// # Performance
//
// Processors reuse buffers across reads; steady-state reads do not allocate.
// This matters for the capture path, which may run alongside a live audio
// session.
package audio
