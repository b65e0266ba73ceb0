// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream does not start with a FLAC
	// signature and STREAMINFO block.
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedBitDepth is returned for sample sizes outside 4 to 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrMalformedFrame is returned when a frame's subframes disagree with
	// the stream's channel count or with each other in length.
	ErrMalformedFrame = errors.New("malformed FLAC frame")
)
