// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 and
// MPEG-2 Layer 3 streams. The decoder always produces interleaved stereo
// 16-bit little-endian PCM, which is normalized with sample.S16LE:
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Channels is always 2, even for mono files. ReadSamples only returns whole
// stereo frames; a stream cut inside a sample reports sample.ErrTruncatedData.
//
// MP3 writing is not supported.
package mp3
