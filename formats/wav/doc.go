// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// RIFF parsing is done by github.com/go-audio/wav; the PCM data is decoded
// with package sample, so every encoding WAV can carry is supported:
//
//   - unsigned 8-bit PCM (sample.U8)
//   - signed 16, 24 and 32-bit PCM (sample.S16LE, sample.S24LE3, sample.S32LE)
//   - IEEE float 32 and 64-bit (sample.F32LE, sample.F64LE)
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The source returns interleaved float32 samples, whole frames at a time.
// Inputs that are not an io.ReadSeeker are read into memory first.
//
// # Writing WAV Files
//
//	err := wav.WriteWAV(file, 48000, 2, sample.S24LE3, samples)
//
// WriteWAV writes a canonical 44 byte header and encodes the normalized
// samples, clipping them for integer formats. Writable reports which
// formats are accepted.
//
// # Errors
//
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrUnsupportedSampleFormat: the encoding has no sample.Format
//   - ErrNoDataChunk: the file has no data chunk
package wav
