// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"testing"
)

func heapAlloc(n int) []float32 { return make([]float32, n) }

func TestNewStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		alloc    func(int) []float32
		n        int
		expected error
	}{
		{"valid", heapAlloc, 32, nil},
		{"zero length", heapAlloc, 0, ErrCapacity},
		{"negative length", heapAlloc, -16, ErrCapacity},
		{"not a multiple of 16", heapAlloc, 10, ErrCapacity},
		{"nil allocator", nil, 32, ErrMemory},
		{"allocator returns nil", func(int) []float32 { return nil }, 32, ErrMemory},
		{"allocator returns short buffer", func(n int) []float32 { return make([]float32, n-1) }, 32, ErrMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := newStore(tt.alloc, tt.n)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if tt.expected == nil && st.capacity() != uint32(tt.n) {
				t.Errorf("expected capacity %d, got %d", tt.n, st.capacity())
			}
		})
	}
}

func TestNewStore_ClearsDirtyBuffer(t *testing.T) {
	t.Parallel()

	dirty := func(n int) []float32 {
		buf := make([]float32, n)
		for i := range buf {
			buf[i] = 1
		}
		return buf
	}

	st, err := newStore(dirty, 32)
	if err != nil {
		t.Fatalf("newStore failed: %v", err)
	}
	for i, v := range st.buf {
		if v != 0 {
			t.Fatalf("sample %d: expected zeroed buffer, got %f", i, v)
		}
	}
}

func TestStore_Release(t *testing.T) {
	t.Parallel()

	st, err := newStore(heapAlloc, 32)
	if err != nil {
		t.Fatalf("newStore failed: %v", err)
	}

	st.release()
	if st.buf != nil {
		t.Error("expected buffer to be dropped after release")
	}
}
