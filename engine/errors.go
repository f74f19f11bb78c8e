// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

// Startup errors. Each maps to a distinct refusal to run; none of them can
// occur after New has returned successfully.
var (
	ErrNilDescriptor  = errors.New("nil runtime descriptor")
	ErrTargetMismatch = errors.New("descriptor target does not match engine target")
	ErrAPIVersion     = errors.New("incompatible host API version")
	ErrSampleRate     = errors.New("unsupported sample rate, engine requires 48000 Hz")
	ErrGeometry       = errors.New("unsupported channel geometry, engine requires stereo in and out")
	ErrMemory         = errors.New("sample buffer allocation failed")
	ErrCapacity       = errors.New("buffer length must be positive and a multiple of 16")
)
