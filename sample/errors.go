// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	// ErrTruncatedData is returned when fewer bytes than a whole sample are available.
	ErrTruncatedData = errors.New("truncated sample data")

	ErrUnknownFormat = errors.New("unknown sample format")
)
