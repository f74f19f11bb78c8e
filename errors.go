// SPDX-License-Identifier: EPL-2.0

package padtape

import "errors"

var (
	// ErrNilEngine indicates a nil engine was passed to a helper
	ErrNilEngine = errors.New("nil engine")

	// ErrNilSource indicates a nil audio source was passed to Capture
	ErrNilSource = errors.New("nil audio source")

	// ErrInvalidBlock indicates a non-positive block size or frame count
	ErrInvalidBlock = errors.New("invalid block size")
)
