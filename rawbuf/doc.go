// SPDX-License-Identifier: EPL-2.0

// Package rawbuf exposes raw PCM bytes as audio converters.
//
// The wrappers borrow a byte slice holding samples in one sample.Format and
// decode or encode single samples on access, so no converted copy of the
// audio is kept in memory:
//
//	buf, err := rawbuf.NewInterleaved[float32](data, sample.S16LE, 2, frames)
//	if err != nil {
//	    return err
//	}
//	v, err := buf.Get(1, 0) // right channel, first frame
//
// Interleaved and Sequential are read-only and have no Set method.
// InterleavedMut and SequentialMut write through to the bytes, clipping
// values that do not fit an integer format.
//
// All wrappers implement the slice hooks of package audio in both
// directions, so channel and frame copies skip the per sample bounds check.
package rawbuf
