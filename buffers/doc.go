// SPDX-License-Identifier: EPL-2.0

// Package buffers holds in-memory sample storage that implements the
// audio.Converter interfaces for typed slices:
//
//   - Interleaved: one flat slice, frame-major (L R L R ...)
//   - Sequential: one flat slice, channel-major (L L ... R R ...)
//   - Channels: one slice per channel
//
// All three borrow the slices they are built from and implement the fast
// channel copy paths used by audio.ReadChannel and audio.Copy.
//
// IntBuffer and FloatBuffer adapt github.com/go-audio/audio buffers, so audio
// decoded or encoded with the go-audio packages can be inspected with the
// same tools. ToIntBuffer goes the other way.
package buffers
