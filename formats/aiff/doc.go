// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse AIFF files.
// Signed PCM at 8, 16, 24 and 32 bits is supported, mono or multi-channel,
// at any sample rate.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are normalized with the same scale as package sample uses for
// the matching big-endian format (sample.S16BE for 16-bit files, and so on),
// so a value read here equals the one sample.Decode would give for the raw
// bytes. ReadSamples only returns whole frames.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the file declares no channels
//
// AIFF-C compressed files are not supported. Writing AIFF is not supported;
// use wav.WriteWAV or package sample to store decoded audio.
package aiff
