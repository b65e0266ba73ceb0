// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

func TestWriteWAV_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV[float32](buf, 8000, 1, sample.S16LE, nil); err != nil {
		t.Fatalf("WriteWAV() error = %v, want nil", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("WAV file size = %d, want %d (header only)", buf.Len(), headerSize)
	}
}

func TestWriteWAV_CorrectHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   sample.Format
		channels int
		tag      uint16
		bits     uint16
	}{
		{sample.U8, 1, formatPCM, 8},
		{sample.S16LE, 2, formatPCM, 16},
		{sample.S24LE3, 2, formatPCM, 24},
		{sample.S32LE, 1, formatPCM, 32},
		{sample.F32LE, 2, formatIEEEFloat, 32},
		{sample.F64LE, 6, formatIEEEFloat, 64},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()

			samples := make([]float64, tt.channels*4)
			buf := new(bytes.Buffer)
			if err := WriteWAV(buf, 44100, tt.channels, tt.format, samples); err != nil {
				t.Fatalf("WriteWAV() error = %v", err)
			}
			data := buf.Bytes()

			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
				t.Fatalf("markers = %q %q", data[0:4], data[8:12])
			}
			if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
				t.Fatalf("chunk ids = %q %q", data[12:16], data[36:40])
			}

			width := tt.format.Width()
			checks := []struct {
				name      string
				got, want uint32
			}{
				{"riff size", binary.LittleEndian.Uint32(data[4:8]), uint32(len(data) - 8)},
				{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
				{"format tag", uint32(binary.LittleEndian.Uint16(data[20:22])), uint32(tt.tag)},
				{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), uint32(tt.channels)},
				{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
				{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(44100 * tt.channels * width)},
				{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), uint32(tt.channels * width)},
				{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), uint32(tt.bits)},
				{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(len(samples) * width)},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
				}
			}
		})
	}
}

func TestWriteWAV_SampleData(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV(buf, 8000, 1, sample.S16LE, []float32{0.5, -0.5, 2, -2}); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	data := buf.Bytes()[headerSize:]
	want := []int16{16384, -16384, 32767, -32768}
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(data[i*2:])); got != w {
			t.Errorf("sample[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestWriteWAV_OddDataIsPadded(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV(buf, 8000, 1, sample.S24LE3, []float64{0.25}); err != nil {
		t.Fatal(err)
	}

	if buf.Len() != headerSize+4 {
		t.Fatalf("file size = %d, want %d", buf.Len(), headerSize+4)
	}
	if size := binary.LittleEndian.Uint32(buf.Bytes()[40:44]); size != 3 {
		t.Errorf("data size = %d, want 3", size)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := readAll(src)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if len(got) != 1 || math.Abs(float64(got[0])-0.25) > 1e-6 {
		t.Errorf("decoded %v, want [0.25]", got)
	}
}

func TestWriteWAV_Errors(t *testing.T) {
	t.Parallel()

	for _, f := range []sample.Format{sample.S8, sample.S16BE, sample.S24LE4, sample.F32BE, sample.Format(0)} {
		err := WriteWAV(io.Discard, 8000, 1, f, []float32{0})
		if !errors.Is(err, ErrUnsupportedSampleFormat) {
			t.Errorf("WriteWAV(%s) error = %v, want ErrUnsupportedSampleFormat", f, err)
		}
	}

	if err := WriteWAV(io.Discard, 8000, 2, sample.S16LE, []float32{0, 0, 0}); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("WriteWAV(odd frames) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []float32{0, 0.5, -0.5, 0.25, -0.25, 1, -1, 0.125}

	for _, f := range []sample.Format{sample.U8, sample.S16LE, sample.S24LE3, sample.S32LE, sample.F32LE, sample.F64LE} {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteWAV(buf, 16000, 2, f, original); err != nil {
				t.Fatalf("WriteWAV() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.Channels() != 2 || src.SampleRate() != 16000 {
				t.Errorf("Decode() = %d channels @ %d Hz", src.Channels(), src.SampleRate())
			}

			got, err := readAll(src)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if len(got) != len(original) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(original))
			}

			tolerance := 1 / f.Scale()
			if !f.IsInteger() {
				tolerance = 1e-7
			}
			for i := range original {
				if math.Abs(float64(got[i]-original[i])) > tolerance {
					t.Errorf("sample %d = %v, want %v", i, got[i], original[i])
				}
			}
		})
	}
}

func BenchmarkWriteWAV(b *testing.B) {
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(i%200-100) / 100
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = WriteWAV(io.Discard, 44100, 1, sample.S16LE, samples)
	}
}
