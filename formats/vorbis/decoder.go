package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/padtape/audio"
	"github.com/jfreymuth/oggvorbis"
)

// frameReader is the slice of oggvorbis.Reader the stream depends on, kept
// as an interface so tests can substitute canned frames.
type frameReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// stream adapts oggvorbis's frame-based reads to the Source contract.
// oggvorbis already produces interleaved float32, so only the frame/sample
// count translation is needed.
type stream struct {
	dec        frameReader
	sampleRate int
	channels   int
	scratch    []float32
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) Close() error    { return nil }
func (s *stream) BufSize() int    { return cap(s.scratch) }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	// Only whole frames are read; a dst shorter than one frame yields 0.
	need := (len(dst) / s.channels) * s.channels
	if need == 0 {
		return 0, nil
	}

	if cap(s.scratch) < need {
		s.scratch = make([]float32, need)
	}
	s.scratch = s.scratch[:need]

	frames, err := s.dec.Read(s.scratch)
	if frames == 0 {
		return 0, err
	}

	samples := frames * s.channels
	copy(dst, s.scratch[:samples])

	return samples, err
}

// Decoder decodes Ogg Vorbis streams into audio sources.
type Decoder struct{}

// Decode wraps r in a decoding source. The Ogg container headers are parsed
// eagerly; sample data is streamed.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &stream{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		scratch:    make([]float32, 4096),
	}, nil
}
