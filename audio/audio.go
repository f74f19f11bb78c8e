// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register adds or replaces the decoder for a format key. Keys are matched
// case-insensitively.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// ForPath resolves a decoder from a file path's extension, so "loop.WAV"
// finds the decoder registered under "wav".
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if d, ok := r.Get(ext); ok {
		return d, nil
	}
	return nil, ErrUnknownFormat
}
