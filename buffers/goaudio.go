// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// IntBuffer exposes a go-audio IntBuffer as normalized samples. The integer
// data is interpreted as signed PCM of the buffer's SourceBitDepth, and
// writes are quantized and clipped to that depth. go-audio/wav stores 8 bit
// files as unsigned values, so such buffers read offset by 128.
type IntBuffer struct {
	buf    *goaudio.IntBuffer
	format sample.Format
	frames int
}

var _ audio.ConverterMut[float64] = (*IntBuffer)(nil)

func NewIntBuffer(b *goaudio.IntBuffer) (*IntBuffer, error) {
	channels, err := goaudioChannels(b.Format)
	if err != nil {
		return nil, err
	}

	f, err := sample.FormatFor(sample.Signed, b.SourceBitDepth, false)
	if err != nil {
		return nil, err
	}

	return &IntBuffer{
		buf:    b,
		format: f,
		frames: len(b.Data) / channels,
	}, nil
}

func (b *IntBuffer) Channels() int { return b.buf.Format.NumChannels }
func (b *IntBuffer) Frames() int   { return b.frames }

// Format is the integer format matching the buffer's bit depth.
func (b *IntBuffer) Format() sample.Format { return b.format }

func (b *IntBuffer) Get(channel, frame int) (float64, error) {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		return 0, err
	}
	return sample.Normalize(int64(b.buf.Data[frame*b.Channels()+channel]), b.format), nil
}

func (b *IntBuffer) Set(channel, frame int, v float64) error {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		return err
	}
	b.buf.Data[frame*b.Channels()+channel] = int(sample.Quantize(v, b.format))
	return nil
}

// FloatBuffer exposes a go-audio FloatBuffer, whose samples are already
// normalized.
type FloatBuffer struct {
	*Interleaved[float64]
}

func NewFloatBuffer(b *goaudio.FloatBuffer) (*FloatBuffer, error) {
	channels, err := goaudioChannels(b.Format)
	if err != nil {
		return nil, err
	}

	in, err := NewInterleaved(b.Data, channels, len(b.Data)/channels)
	if err != nil {
		return nil, err
	}
	return &FloatBuffer{Interleaved: in}, nil
}

func goaudioChannels(f *goaudio.Format) (int, error) {
	if f == nil || f.NumChannels <= 0 {
		return 0, fmt.Errorf("%w: go-audio buffer without channel format", audio.ErrShapeMismatch)
	}
	return f.NumChannels, nil
}

// ToIntBuffer copies c into a new go-audio IntBuffer with the given bit
// depth and sample rate, e.g. for handing audio to a go-audio encoder.
func ToIntBuffer(c audio.Converter[float64], bitDepth, sampleRate int) (*goaudio.IntBuffer, error) {
	out := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Channels(),
			SampleRate:  sampleRate,
		},
		Data:           make([]int, c.Channels()*c.Frames()),
		SourceBitDepth: bitDepth,
	}

	dst, err := NewIntBuffer(out)
	if err != nil {
		return nil, err
	}
	if err := audio.Copy[float64](dst, c); err != nil {
		return nil, err
	}
	return out, nil
}
