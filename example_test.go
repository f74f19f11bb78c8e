// SPDX-License-Identifier: EPL-2.0

package padtape_test

import (
	"fmt"

	"github.com/ik5/padtape"
	"github.com/ik5/padtape/engine"
	"github.com/ik5/padtape/host"
	"github.com/ik5/padtape/internal/audiotest"
)

// Example_capture records a short source into the engine buffer.
func Example_capture() {
	desc := host.DefaultDescriptor()
	e, err := engine.New(desc, engine.WithBufferLen(4096))
	if err != nil {
		fmt.Printf("engine error: %v\n", err)
		return
	}
	defer e.Teardown()

	src := audiotest.NewConstantSource(48000, 2, 2048, 0.5)

	frames, err := padtape.Capture(e, src, 256)
	if err != nil {
		fmt.Printf("capture error: %v\n", err)
		return
	}

	fmt.Printf("Captured frames: %d\n", frames)

	// Output:
	// Captured frames: 2048
}

// Example_renderRegion captures audio and plays back the first touch region.
func Example_renderRegion() {
	desc := host.DefaultDescriptor()
	e, err := engine.New(desc, engine.WithBufferLen(4096))
	if err != nil {
		fmt.Printf("engine error: %v\n", err)
		return
	}
	defer e.Teardown()

	src := audiotest.NewConstantSource(48000, 2, 2048, 0.25)
	if _, err := padtape.Capture(e, src, 256); err != nil {
		fmt.Printf("capture error: %v\n", err)
		return
	}

	// Touch at the far left, bottom row: region 0 at 1x speed.
	out, err := padtape.RenderRegion(e, 0, 0, 4, 256)
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Rendered samples: %d\n", len(out))
	fmt.Printf("First frame: %.2f %.2f\n", out[0], out[1])

	// Output:
	// Rendered samples: 8
	// First frame: 0.25 0.25
}
