// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
)

// Example demonstrates decoding a WAV file into float32 samples.
func Example() {
	wavData := createWAVFile(16000, 1, []int16{100, 200, 300, 400, 500})

	decoder := Decoder{}
	source, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}
