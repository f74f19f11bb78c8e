// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/padtape/audio"
)

// pcmReader is the slice of gomp3.Decoder the stream depends on, kept as an
// interface so tests can substitute canned PCM.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// stream adapts go-mp3's 16-bit little-endian PCM byte output to float32
// samples. go-mp3 always renders stereo, so Channels is fixed at 2.
type stream struct {
	dec        pcmReader
	sampleRate int
	scratch    []byte
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return 2 }
func (s *stream) Close() error    { return nil }
func (s *stream) BufSize() int    { return cap(s.scratch) / 2 }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.scratch) < need {
		s.scratch = make([]byte, need)
	}
	s.scratch = s.scratch[:need]

	n, err := s.dec.Read(s.scratch)
	if n == 0 {
		return 0, err
	}

	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.scratch[2*i]) | uint16(s.scratch[2*i+1])<<8)
		dst[i] = float32(v) / 32768
	}

	return samples, err
}

// Decoder decodes MP3 streams into audio sources.
type Decoder struct{}

// Decode wraps r in a decoding source. The reader must start at an MP3
// frame or ID3 tag; decoding is streamed, nothing is buffered up front.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		scratch:    make([]byte, 8192),
	}, nil
}
