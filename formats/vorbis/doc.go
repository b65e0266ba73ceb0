// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes straight
// to interleaved float32, so samples are handed out without any conversion.
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Any channel count is supported. ReadSamples returns whole frames only and
// n counts values, not frames. Vorbis is lossy: decoded values may slightly
// exceed [-1.0, 1.0] and are not clipped.
//
// Writing Ogg Vorbis is not supported.
package vorbis
