// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"testing"

	"github.com/ik5/padtape"
	"github.com/ik5/padtape/engine"
	"github.com/ik5/padtape/host"
	"github.com/ik5/padtape/internal/audiotest"
)

func newLoadedEngine(t *testing.T) *engine.Engine {
	t.Helper()

	desc := host.DefaultDescriptor()
	e, err := engine.New(desc, engine.WithBufferLen(4096))
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	t.Cleanup(e.Teardown)

	src := audiotest.NewConstantSource(48000, 2, 2048, 0.5)
	if _, err := padtape.Capture(e, src, 256); err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	e.SetParameter(engine.ParamDepth, 0)

	return e
}

func TestStreamer_RendersTouchRegion(t *testing.T) {
	t.Parallel()

	e := newLoadedEngine(t)
	e.Touch(0, engine.TouchBegan, 0, 0)

	s := New(e)
	samples := make([][2]float64, 64)
	n, ok := s.Stream(samples)

	if n != 64 || !ok {
		t.Fatalf("expected (64, true), got (%d, %v)", n, ok)
	}
	if samples[0][0] != 0.5 || samples[0][1] != 0.5 {
		t.Errorf("expected first frame 0.5/0.5, got %f/%f", samples[0][0], samples[0][1])
	}
}

func TestStreamer_SilentWhenExhausted(t *testing.T) {
	t.Parallel()

	e := newLoadedEngine(t)
	e.Touch(0, engine.TouchBegan, 0, 0)

	s := New(e)
	// Region 0 of a 4096-sample buffer is 256 frames; drain it.
	drain := make([][2]float64, 512)
	s.Stream(drain)

	samples := make([][2]float64, 16)
	n, ok := s.Stream(samples)
	if n != 16 || !ok {
		t.Fatalf("expected (16, true), got (%d, %v)", n, ok)
	}
	for i, fr := range samples {
		if fr[0] != 0 || fr[1] != 0 {
			t.Errorf("frame %d: expected silence, got %f/%f", i, fr[0], fr[1])
		}
	}
}

func TestStreamer_SpansBlocks(t *testing.T) {
	t.Parallel()

	e := newLoadedEngine(t)
	// Region 3 starts at frame 768 of a 2048-frame buffer.
	e.Touch(0, engine.TouchBegan, 420, 0)

	s := New(e)
	// More than one internal block in a single pull.
	samples := make([][2]float64, blockFrames+100)
	n, ok := s.Stream(samples)

	if n != len(samples) || !ok {
		t.Fatalf("expected (%d, true), got (%d, %v)", len(samples), n, ok)
	}
	if samples[0][0] != 0.5 {
		t.Errorf("expected region audio in the first frame, got %f", samples[0][0])
	}
}

func TestStreamer_Err(t *testing.T) {
	t.Parallel()

	s := New(newLoadedEngine(t))
	if err := s.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
