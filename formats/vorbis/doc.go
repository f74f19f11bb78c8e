// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio sources, backed by
// github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
//	file, _ := os.Open("loop.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // not a vorbis stream
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples come out as interleaved float32 in [-1.0, 1.0] at the file's own
// rate and channel count. Vorbis decodes to float natively, so no scaling
// happens here.
//
// # Feeding The Engine
//
// Mono files are widened and any rate is converted on the way into a
// capture session:
//
//	src, _ := vorbis.Decoder{}.Decode(file)
//	frames, _ := padtape.Capture(eng, src, 256)
//
// or, wiring the pipeline by hand:
//
//	stereo := audio.NewStereoMixer(audio.NewResampler(src, 48000))
//
// Reads are whole frames only; a destination shorter than one frame yields
// nothing. Encoding is not supported.
package vorbis
