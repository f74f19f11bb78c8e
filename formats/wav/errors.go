package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
	ErrMissingPCMData       = errors.New("WAV file has no PCM data chunk")
)
