// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into
// audio sources, backed by github.com/go-audio/aiff.
//
// AIFF is the big-endian sibling of WAV, common on Apple platforms. Only
// 16-bit PCM sound data is accepted; other bit depths and AIFF-C
// compression fail with ErrOnlyPCM16bitSupported.
//
// # Decoding
//
//	file, _ := os.Open("hit.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, aiff.ErrNotAiffFile):
//	    // wrong container
//	case errors.Is(err, aiff.ErrOnlyPCM16bitSupported):
//	    // unsupported sound data
//	}
//
// Samples come out as interleaved float32 in [-1.0, 1.0] at the file's own
// rate and channel count. go-audio needs a seekable input; a plain reader
// is buffered in memory first.
//
// # Feeding The Engine
//
//	src, _ := aiff.Decoder{}.Decode(file)
//	frames, _ := padtape.Capture(eng, src, 256)
//
// Capture handles the resample and stereo widening. Encoding is not
// supported.
package aiff
