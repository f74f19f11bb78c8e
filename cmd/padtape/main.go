// SPDX-License-Identifier: EPL-2.0

// Package main is a terminal touch pad over the padtape engine: it captures
// an audio file into the engine buffer and plays regions of it from an 8x4
// pad grid.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ik5/padtape"
	"github.com/ik5/padtape/audio"
	"github.com/ik5/padtape/engine"
	"github.com/ik5/padtape/formats/aiff"
	"github.com/ik5/padtape/formats/mp3"
	"github.com/ik5/padtape/formats/vorbis"
	"github.com/ik5/padtape/formats/wav"
	"github.com/ik5/padtape/host"
	"github.com/ik5/padtape/monitor"
)

const blockFrames = 256

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

func run() error {
	if len(os.Args) < 2 {
		return errors.New("usage: padtape <file.{wav|mp3|ogg|aiff}>")
	}
	path := os.Args[1]

	dec, err := newRegistry().ForPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	defer src.Close()

	desc := host.DefaultDescriptor()
	e, err := engine.New(desc)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	defer e.Teardown()

	frames, err := padtape.Capture(e, src, blockFrames)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	e.SetParameter(engine.ParamDepth, 0)
	e.Reset()

	sr := beep.SampleRate(padtape.EngineRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	defer speaker.Close()
	speaker.Play(monitor.New(e))

	prog := tea.NewProgram(newModel(e, path, frames), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
