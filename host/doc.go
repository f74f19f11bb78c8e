// SPDX-License-Identifier: EPL-2.0

// Package host describes the runtime contract between a loading host and the
// padtape engine.
//
// A host hands the engine a Descriptor once, at load time. The descriptor
// carries the capability surface the engine validates before it agrees to
// run: platform target, API version, sample rate, channel geometry, and the
// allocator hook used for the one-time sample buffer allocation.
//
// # API Versioning
//
// API versions are packed as 0xMMmmpp (major, minor, patch):
//
//	v := host.Version(2, 1, 0)
//	host.APICompat(builtAgainst, v) // true when major matches and the
//	                                // runtime minor is at least as new
//
// # Allocator Hook
//
// Hooks.Alloc is called exactly once per engine, during initialization, from
// a non-real-time context. It must return a zero-filled slice of the
// requested length, or nil on failure. Buffers are released implicitly when
// the host tears the engine down; there is no free hook.
//
// DefaultDescriptor returns a descriptor suitable for in-process hosts and
// tests: 48 kHz, stereo in and out, heap-backed allocation.
package host
