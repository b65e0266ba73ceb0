// SPDX-License-Identifier: EPL-2.0

package rawbuf

import (
	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// Sequential reads channel-major raw bytes: all frames of channel 0, then
// all frames of channel 1 and so on.
type Sequential[T sample.Normalized] struct {
	layout
	data []byte
}

var (
	_ audio.Converter[float32]     = (*Sequential[float32])(nil)
	_ audio.ChannelReader[float32] = (*Sequential[float32])(nil)
)

func NewSequential[T sample.Normalized](data []byte, f sample.Format, channels, frames int) (*Sequential[T], error) {
	l, err := newLayout(len(data), f, channels, frames, false)
	if err != nil {
		return nil, err
	}
	return &Sequential[T]{layout: l, data: data}, nil
}

func (b *Sequential[T]) Get(channel, frame int) (T, error) {
	return get[T](b.layout, b.data, channel, frame)
}

func (b *Sequential[T]) ReadChannel(channel, start int, dst []T) error {
	return decodeRun(b.data, b.offset(channel, start), b.frameStep, b.format, dst)
}

func (b *Sequential[T]) ReadFrame(frame, start int, dst []T) error {
	return decodeRun(b.data, b.offset(start, frame), b.channelStep, b.format, dst)
}

// SequentialMut is the writable form of Sequential.
type SequentialMut[T sample.Normalized] struct {
	Sequential[T]
}

var _ audio.ConverterMut[float32] = (*SequentialMut[float32])(nil)

func NewSequentialMut[T sample.Normalized](data []byte, f sample.Format, channels, frames int) (*SequentialMut[T], error) {
	b, err := NewSequential[T](data, f, channels, frames)
	if err != nil {
		return nil, err
	}
	return &SequentialMut[T]{Sequential: *b}, nil
}

func (b *SequentialMut[T]) Set(channel, frame int, v T) error {
	return set(b.layout, b.data, channel, frame, v)
}

func (b *SequentialMut[T]) WriteChannel(channel, start int, src []T) error {
	return encodeRun(b.data, b.offset(channel, start), b.frameStep, b.format, src)
}

func (b *SequentialMut[T]) WriteFrame(frame, start int, src []T) error {
	return encodeRun(b.data, b.offset(start, frame), b.channelStep, b.format, src)
}
