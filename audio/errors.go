// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrIndexOutOfBounds is returned for a channel, frame or range outside
	// the geometry of a buffer. Coordinates are never clamped.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrUnsupportedCapability is returned when a buffer is asked for a
	// capability its sample type or wrapper does not offer.
	ErrUnsupportedCapability = errors.New("unsupported capability")

	ErrBufferTooShort = errors.New("buffer too short for geometry")
	ErrShapeMismatch  = errors.New("buffer geometry mismatch")
	ErrUnknownDecoder = errors.New("no decoder registered for format")
)
