// SPDX-License-Identifier: EPL-2.0

// Package sample converts single audio samples between raw byte encodings
// and normalized floating point values.
//
// # Formats
//
// A Format names one raw encoding: its byte width, byte order and numeric
// kind. The catalogue covers:
//   - U8, S8 (8 bit unsigned offset binary and signed)
//   - S16LE, S16BE
//   - S24LE3, S24BE3 (24 bit packed in 3 bytes)
//   - S24LE4, S24BE4 (24 bit in a 4 byte container)
//   - S32LE, S32BE
//   - F32LE, F32BE, F64LE, F64BE
//
// # Normalized Values
//
// Decoded values use the range [-1.0, 1.0] for full scale. Integer codes are
// divided by the largest positive code, so for S16 the code 32767 decodes to
// exactly 1.0, -32767 decodes to -1.0 and the spare code -32768 decodes to
// -1.0000305. Encoding multiplies by the same magnitude, rounds half away
// from zero and clips:
//
//	buf := make([]byte, 2)
//	sample.Encode(buf, 2.0, sample.S16LE) // clipped to 32767
//	v, _ := sample.Decode(buf, sample.S16LE) // 1.0
//
// Float formats store the value unchanged, so headroom above 1.0 survives a
// round trip through F32 or F64.
//
// # Streams
//
// WriteSamples, ReadSamples and ReadAllSamples move many samples at once
// between a slice and an io.Writer or io.Reader:
//
//	n, err := sample.WriteSamples(w, []float32{0, 0.5, -0.5}, sample.S24LE3)
//
//	values, err := sample.ReadAllSamples[float64](r, sample.S24LE3)
//	if errors.Is(err, sample.ErrTruncatedData) {
//	    // the stream ended in the middle of a sample
//	}
//
// A stream that ends on a sample boundary is a clean end. Leftover bytes that
// do not form a whole sample are reported as ErrTruncatedData after all whole
// samples have been decoded.
package sample
