package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/ik5/padtape/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	want := &mockDecoder{name: "wav"}
	reg.Register("wav", want)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("expected decoder to be registered")
	}
	if got != want {
		t.Error("expected the registered decoder back")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, ok := reg.Get("flac"); ok {
		t.Error("expected no decoder for an unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	reg.Register("wav", first)
	reg.Register("wav", second)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("expected decoder to be registered")
	}
	if got != second {
		t.Error("expected the later registration to win")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &mockDecoder{name: "wav"}
	reg.Register("WAV", dec)

	for _, key := range []string{"wav", "Wav", "WAV"} {
		if _, ok := reg.Get(key); !ok {
			t.Errorf("expected lookup %q to find the decoder", key)
		}
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	wav := &mockDecoder{name: "wav"}
	mp3 := &mockDecoder{name: "mp3"}
	reg.Register("wav", wav)
	reg.Register("mp3", mp3)

	tests := []struct {
		name     string
		path     string
		expected *mockDecoder
		err      error
	}{
		{"wav path", "loop.wav", wav, nil},
		{"uppercase extension", "LOOP.WAV", wav, nil},
		{"nested path", "/music/in/track.mp3", mp3, nil},
		{"unknown extension", "notes.txt", nil, ErrUnknownFormat},
		{"no extension", "Makefile", nil, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.ForPath(tt.path)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.expected != nil && got != Decoder(tt.expected) {
				t.Error("expected a different decoder for this path")
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(fmt.Sprintf("fmt%d", i), &mockDecoder{})
		}(i)
		go func(i int) {
			defer wg.Done()
			reg.Get(fmt.Sprintf("fmt%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		if _, ok := reg.Get(fmt.Sprintf("fmt%d", i)); !ok {
			t.Errorf("expected fmt%d to be registered", i)
		}
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", &mockDecoder{})

	b.ReportAllocs()
	for b.Loop() {
		reg.Get("wav")
	}
}
