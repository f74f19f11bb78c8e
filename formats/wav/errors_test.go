package wav

import (
	"errors"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrUnsupportedBitDepth,
		ErrMissingPCMData,
	}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinels %d and %d compare equal", i, j)
			}
		}
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(ErrNotWavFile, errors.New("while probing input"))
	if !errors.Is(wrapped, ErrNotWavFile) {
		t.Error("errors.Is() failed for wrapped ErrNotWavFile")
	}
}
