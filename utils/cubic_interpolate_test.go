// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"endpoint y1", 0, 1, 2, 3, 0, 1, 0},
		{"endpoint y2", 0, 1, 2, 3, 1, 2, 0},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5, 1e-6},
		{"constant signal", 0.5, 0.5, 0.5, 0.5, 0.25, 0.5, 1e-6},
		{"zero signal", 0, 0, 0, 0, 0.5, 0, 0},
		{"negative ramp", 3, 2, 1, 0, 0.5, 1.5, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if float32(math.Abs(float64(got-tt.want))) > tt.tolerance {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestCubicInterpolate_StaysNearSegment(t *testing.T) {
	t.Parallel()

	// Catmull-Rom may overshoot, but for a gentle curve the interpolant
	// should stay close to the y1..y2 segment.
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		got := CubicInterpolate(0, 0.1, 0.2, 0.3, x)
		if got < 0.1-0.05 || got > 0.2+0.05 {
			t.Errorf("x=%.1f: interpolant %f strayed from segment [0.1, 0.2]", x, got)
		}
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var sink float32

	b.ReportAllocs()
	for b.Loop() {
		sink = CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0.5)
	}
	_ = sink
}
