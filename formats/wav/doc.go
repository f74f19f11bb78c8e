// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding for the padtape capture
// pipeline.
//
// It uses the github.com/go-audio libraries for WAV parsing and exposes the
// decoded stream as an audio.Source of float32 samples in [-1.0, 1.0].
//
// # Supported Formats
//
//   - PCM at bit depths up to 32
//   - Mono, stereo, and multichannel layouts
//   - Any sample rate (the capture path resamples to 48 kHz)
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("loop.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decode wants an io.ReadSeeker; plain readers are buffered into memory
// first, so prefer passing files or byte readers directly.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedWavLayout: header declares no channels or no rate
//   - ErrUnsupportedBitDepth: bit depth outside 1..32
//   - ErrMissingPCMData: no data chunk found
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
