package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/padtape/audio"
)

// chunkReader is the slice of aiff.Decoder the stream depends on, kept as an
// interface so tests can substitute canned PCM.
type chunkReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// stream adapts go-audio's integer PCM buffers to float32 samples. Only
// 16-bit PCM is accepted at decode time, so the scale is fixed.
type stream struct {
	dec        chunkReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *stream) SampleRate() int { return s.sampleRate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) Close() error    { return nil }

func (s *stream) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *stream) ReadSamples(dst []float32) (int, error) {
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
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / 32768
	}

	// A short read without an error means the sound chunk ran out.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Decoder decodes AIFF streams into audio sources.
type Decoder struct{}

// Decode validates the AIFF container and returns a streaming source over
// its sound data. go-audio needs seeking, so a plain reader is buffered in
// memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &stream{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
