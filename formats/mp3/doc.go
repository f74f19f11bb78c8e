// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio sources, backed by
// github.com/hajimehoshi/go-mp3.
//
// The decoder emits interleaved float32 samples in [-1.0, 1.0]. go-mp3
// always renders stereo, so the only adaptation a capture session needs is
// a rate conversion:
//
//	file, _ := os.Open("track.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	frames, _ := padtape.Capture(eng, src, 256)
//
// Decoding is streamed frame by frame; encoding is not supported.
package mp3
