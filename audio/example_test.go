// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/buffers"
	"github.com/ik5/rawpcm/internal/audiotest"
)

type mockDecoder struct{}

func (mockDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 100), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	// Keys ignore case and a leading dot.
	decoder, ok := registry.Get(".MOCK")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}
	fmt.Printf("Retrieved decoder: %T\n", decoder)

	if _, err := registry.Decode("flac", nil); errors.Is(err, audio.ErrUnknownDecoder) {
		fmt.Println("flac: no decoder registered")
	}
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// flac: no decoder registered
}

// ExampleNewBuffer views interleaved samples one channel at a time.
func ExampleNewBuffer() {
	pcm, err := buffers.NewInterleaved([]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, 2, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := audio.NewBuffer[float32](pcm)
	for ch, samples := range buf.AllChannels() {
		fmt.Printf("channel %d: %v\n", ch, slices.Collect(samples))
	}

	frame, _ := buf.Frame(1)
	fmt.Printf("frame 1: %v\n", slices.Collect(frame))
	// Output:
	// channel 0: [0.1 0.3 0.5]
	// channel 1: [0.2 0.4 0.6]
	// frame 1: [0.3 0.4]
}

// ExampleCopy converts between storage layouts.
func ExampleCopy() {
	src, _ := buffers.NewInterleaved([]int16{1, 10, 2, 20, 3, 30}, 2, 3)
	dst := buffers.MakeSequential[int16](2, 3)

	if err := audio.Copy[int16](dst, src); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(dst.Data())

	small := buffers.MakeSequential[int16](2, 2)
	if err := audio.Copy[int16](small, src); errors.Is(err, audio.ErrShapeMismatch) {
		fmt.Println("shape mismatch")
	}
	// Output:
	// [1 2 3 10 20 30]
	// shape mismatch
}

// ExampleStatsOf computes levels without knowing the sample type up front.
func ExampleStatsOf() {
	pcm, _ := buffers.NewChannels([][]float64{
		{0.5, -0.5, 0.5, -0.5},
		{0.25, 0.25, 0.25, 0.25},
	})

	stats, err := audio.StatsOf[float64](audio.NewBuffer[float64](pcm))
	if err != nil {
		fmt.Println(err)
		return
	}

	for ch := range pcm.Channels() {
		p, _ := stats.ChannelPeak(ch)
		r, _ := stats.ChannelRMS(ch)
		pp, _ := stats.ChannelPeakToPeak(ch)
		fmt.Printf("channel %d: peak %.2f rms %.2f p2p %.2f\n", ch, p, r, pp)
	}
	// Output:
	// channel 0: peak 0.50 rms 0.50 p2p 1.00
	// channel 1: peak 0.25 rms 0.25 p2p 0.00
}

// ExampleAsMut upgrades a read-only view when the storage allows writes.
func ExampleAsMut() {
	pcm := buffers.MakeInterleaved[float32](1, 2)

	mut, err := audio.AsMut[float32](audio.NewBufferMut[float32](pcm))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = mut.WriteChannel(0, 0, []float32{0.25, -0.25})
	fmt.Println(pcm.Data())

	if _, err := audio.AsMut[float32](audio.NewBuffer[float32](pcm)); errors.Is(err, audio.ErrUnsupportedCapability) {
		fmt.Println("read-only view")
	}
	// Output:
	// [0.25 -0.25]
	// read-only view
}

// Example_errorHandling shows the errors returned for bad coordinates.
func Example_errorHandling() {
	pcm := buffers.MakeInterleaved[float32](2, 4)

	if _, err := pcm.Get(2, 0); errors.Is(err, audio.ErrIndexOutOfBounds) {
		fmt.Println("Get:", err)
	}

	dst := make([]float32, 3)
	if err := audio.ReadChannel[float32](pcm, 0, 2, dst); errors.Is(err, audio.ErrIndexOutOfBounds) {
		fmt.Println("ReadChannel:", err)
	}
	// Output:
	// Get: index out of bounds: channel 2, frame 0 outside 2x4
	// ReadChannel: index out of bounds: frames [2, 5) outside 4 frames
}

// Example_source drains a Source into a buffer.
func Example_source() {
	source := audiotest.NewConstantSource(16000, 2, 1000, 0.5)
	defer source.Close()

	var samples []float32
	buf := make([]float32, 256)
	for {
		n, err := source.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			return
		}
	}

	pcm, _ := buffers.NewInterleaved(samples, source.Channels(), len(samples)/source.Channels())
	fmt.Printf("%d channels, %d frames\n", pcm.Channels(), pcm.Frames())
	// Output: 2 channels, 1000 frames
}
