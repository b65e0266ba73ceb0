// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/rawpcm/formats/aiff"
	"github.com/ik5/rawpcm/formats/wav"
	"github.com/ik5/rawpcm/sample"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_convertToWav converts an AIFF file to a 24-bit WAV
// file, keeping the original rate and channel count.
func ExampleDecoder_Decode_convertToWav() {
	aiffFile, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer aiffFile.Close()

	src, err := aiff.Decoder{}.Decode(aiffFile)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf := make([]float32, 4096)
	var samples []float32
	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	if err := wav.WriteWAV(wavFile, src.SampleRate(), src.Channels(), sample.S24LE3, samples); err != nil {
		log.Fatal(err)
	}

	fmt.Println("AIFF converted to WAV")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an aiff file"))

	_, err := aiff.Decoder{}.Decode(invalidData)
	switch {
	case errors.Is(err, aiff.ErrNotAiffFile):
		fmt.Println("Detected: not an AIFF file")
	case errors.Is(err, aiff.ErrUnsupportedBitDepth):
		fmt.Println("Detected: unsupported bit depth")
	case err != nil:
		fmt.Printf("Error: %v\n", err)
	}
	// Output: Detected: not an AIFF file
}

// ExampleDecoder_Decode_streaming demonstrates streaming AIFF decoding.
func ExampleDecoder_Decode_streaming() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// AIFF is big-endian; the output is normalized float32 either way.
	buf := make([]float32, 4096)

	var totalSamples int
	for {
		n, err := src.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Streamed %d samples from AIFF\n", totalSamples)
}
