// SPDX-License-Identifier: EPL-2.0

package engine

// Touch surface geometry. Coordinates are 10-bit; the horizontal axis picks
// one of 8 buffer regions and the vertical axis one of 4 playback speeds.
const (
	touchMax      = 1023
	regionBuckets = 8
	speedBuckets  = 4
)

// mapTouch quantizes raw touch coordinates into a playback region and speed.
// The horizontal bucket is x>>7 (0..7); regions are contiguous eighths of the
// buffer, so across all buckets they partition [0, capacity) exactly. The
// vertical bucket is y>>8 (0..3), giving speeds 1x to 4x.
//
// Region bounds keep the float multiply with truncating conversion so the
// produced offsets stay bit-compatible across capacities.
func mapTouch(x, y, capacity uint32) (readIdx, readEnd uint32, speed float32) {
	bx := float64(x >> 7)
	readIdx = uint32(float64(capacity) * bx / regionBuckets)
	readEnd = uint32(float64(capacity) * (bx + 1) / regionBuckets)

	by := float32(y >> 8)
	speed = 1 + by

	return readIdx, readEnd, speed
}
