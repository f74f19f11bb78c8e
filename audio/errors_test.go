package audio

import (
	"errors"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrInvalidDstSize, ErrUnknownFormat, ErrNoChannels}

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

	wrapped := errors.Join(ErrUnknownFormat, errors.New("additional context"))
	if !errors.Is(wrapped, ErrUnknownFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnknownFormat")
	}

	other := errors.New("some other error")
	if errors.Is(other, ErrInvalidDstSize) {
		t.Error("errors.Is() matched an unrelated error")
	}
}
