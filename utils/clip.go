// SPDX-License-Identifier: EPL-2.0

package utils

// ClipInt32 clamps value into [lo, hi]. Argument order follows the
// (lo, value, hi) convention so call sites read as a range check.
func ClipInt32(lo, value, hi int32) int32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
