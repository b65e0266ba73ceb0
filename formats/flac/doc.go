// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// Decoding is done by github.com/mewkiz/flac, one frame at a time. Each
// frame's subframes are interleaved into dst and normalized through the
// sample package, so a FLAC file reads exactly like the same PCM stored in
// a WAV file.
//
//	file, _ := os.Open("audio.flac")
//	source, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Bit depths that do not fill whole bytes (12, 20 bits) are shifted into
// the next byte sized container. Format reports that container.
//
// Writing FLAC is not supported.
package flac
