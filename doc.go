// SPDX-License-Identifier: EPL-2.0

// Package rawpcm converts audio between raw PCM byte streams and typed,
// layout independent sample buffers.
//
// The building blocks live in the subpackages:
//   - sample: the format catalogue and the byte level codec
//   - audio: buffer capabilities, iteration and statistics
//   - rawbuf: buffers viewing raw bytes in any catalogue format
//   - buffers: buffers over typed slices and go-audio buffers
//   - formats/...: decoders for WAV, AIFF, FLAC, MP3 and Ogg Vorbis
//
// This package ties them together for the common cases:
//
//	src, _ := rawpcm.Decoders().Decode("wav", file)
//	buf, _ := rawpcm.Load(src)
//
//	// buf is interleaved float32; store it as big-endian 24-bit PCM
//	_, _ = rawpcm.Encode(out, buf, sample.S24BE3)
//
// DecodeRaw reads headerless PCM back into a buffer:
//
//	buf, err := rawpcm.DecodeRaw(in, sample.S24BE3, 2)
//
// Samples are float32 normalized to [-1.0, 1.0]. Integer formats clip on
// encode; float formats store values unchanged.
package rawpcm
