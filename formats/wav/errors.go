// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedSampleFormat is returned for WAV encodings without a
	// matching sample.Format, and when writing a format WAV cannot carry.
	ErrUnsupportedSampleFormat = errors.New("unsupported WAV sample format")

	ErrNoDataChunk = errors.New("WAV data chunk not found")
)
