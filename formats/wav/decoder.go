// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/padtape/audio"
)

// source wraps go-audio's wav.Decoder to implement audio.Source. PCM ints at
// any supported bit depth are normalized to float32 in [-1, 1].
type source struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// Decoder decodes RIFF/WAVE PCM via go-audio/wav.
type Decoder struct{}

// Decode parses the WAV header and returns a streaming source over the PCM
// data. When r does not implement io.ReadSeeker the remaining input is
// buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.BitDepth == 0 || dec.BitDepth > 32 {
		return nil, ErrUnsupportedBitDepth
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, ErrMissingPCMData
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      1.0 / float32(int64(1)<<(dec.BitDepth-1)),
	}, nil
}
