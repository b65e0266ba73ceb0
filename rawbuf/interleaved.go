// SPDX-License-Identifier: EPL-2.0

package rawbuf

import (
	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// Interleaved reads frame-major raw bytes: the samples of all channels of a
// frame are stored next to each other.
type Interleaved[T sample.Normalized] struct {
	layout
	data []byte
}

var (
	_ audio.Converter[float32]     = (*Interleaved[float32])(nil)
	_ audio.FrameReader[float32]   = (*Interleaved[float32])(nil)
	_ audio.ChannelReader[float32] = (*Interleaved[float32])(nil)
)

// NewInterleaved wraps data, which must hold at least channels*frames
// samples of format f. The bytes are borrowed, not copied.
func NewInterleaved[T sample.Normalized](data []byte, f sample.Format, channels, frames int) (*Interleaved[T], error) {
	l, err := newLayout(len(data), f, channels, frames, true)
	if err != nil {
		return nil, err
	}
	return &Interleaved[T]{layout: l, data: data}, nil
}

func (b *Interleaved[T]) Get(channel, frame int) (T, error) {
	return get[T](b.layout, b.data, channel, frame)
}

// ReadFrame decodes a contiguous run of bytes.
func (b *Interleaved[T]) ReadFrame(frame, start int, dst []T) error {
	return decodeRun(b.data, b.offset(start, frame), b.channelStep, b.format, dst)
}

func (b *Interleaved[T]) ReadChannel(channel, start int, dst []T) error {
	return decodeRun(b.data, b.offset(channel, start), b.frameStep, b.format, dst)
}

// InterleavedMut is the writable form of Interleaved.
type InterleavedMut[T sample.Normalized] struct {
	Interleaved[T]
}

var (
	_ audio.ConverterMut[float32] = (*InterleavedMut[float32])(nil)
	_ audio.FrameWriter[float32]  = (*InterleavedMut[float32])(nil)
)

func NewInterleavedMut[T sample.Normalized](data []byte, f sample.Format, channels, frames int) (*InterleavedMut[T], error) {
	b, err := NewInterleaved[T](data, f, channels, frames)
	if err != nil {
		return nil, err
	}
	return &InterleavedMut[T]{Interleaved: *b}, nil
}

// Set encodes v, clipping it for integer formats.
func (b *InterleavedMut[T]) Set(channel, frame int, v T) error {
	return set(b.layout, b.data, channel, frame, v)
}

func (b *InterleavedMut[T]) WriteFrame(frame, start int, src []T) error {
	return encodeRun(b.data, b.offset(start, frame), b.channelStep, b.format, src)
}

func (b *InterleavedMut[T]) WriteChannel(channel, start int, src []T) error {
	return encodeRun(b.data, b.offset(channel, start), b.frameStep, b.format, src)
}
