// SPDX-License-Identifier: EPL-2.0

package host

// EngineTarget identifies the platform/module combination an engine build is
// intended for. Hosts report their own target in the Descriptor; the engine
// refuses to run on a mismatch.
const EngineTarget uint32 = 0x0301

// EngineAPI is the runtime API version this module was built against.
var EngineAPI = Version(2, 1, 0)

// Hooks are the host services available to the engine. Alloc obtains the
// sample buffer once at initialization; it must return a zero-filled slice of
// length n, or nil when the allocation cannot be satisfied.
type Hooks struct {
	Alloc func(n int) []float32
}

// Descriptor is the runtime contract a host guarantees for the lifetime of a
// loaded engine. All fields are fixed once the engine has been initialized.
type Descriptor struct {
	Target         uint32
	API            uint32
	SampleRate     int
	InputChannels  int
	OutputChannels int
	Hooks          Hooks
}

// Version packs major/minor/patch into the 0xMMmmpp wire form.
func Version(major, minor, patch uint8) uint32 {
	return uint32(major)<<16 | uint32(minor)<<8 | uint32(patch)
}

// Major extracts the major component of a packed version.
func Major(v uint32) uint8 { return uint8(v >> 16) }

// Minor extracts the minor component of a packed version.
func Minor(v uint32) uint8 { return uint8(v >> 8) }

// Patch extracts the patch component of a packed version.
func Patch(v uint32) uint8 { return uint8(v) }

// APICompat reports whether a runtime API version can host a module built
// against the given version: the major must match and the runtime minor must
// be at least the built minor. Patch differences are always compatible.
func APICompat(built, runtime uint32) bool {
	if Major(built) != Major(runtime) {
		return false
	}
	return Minor(runtime) >= Minor(built)
}

// DefaultDescriptor returns a descriptor for in-process hosts: the engine's
// own target and API, 48 kHz stereo, and heap-backed allocation.
func DefaultDescriptor() *Descriptor {
	return &Descriptor{
		Target:         EngineTarget,
		API:            EngineAPI,
		SampleRate:     48000,
		InputChannels:  2,
		OutputChannels: 2,
		Hooks: Hooks{
			Alloc: func(n int) []float32 { return make([]float32, n) },
		},
	}
}
