// SPDX-License-Identifier: EPL-2.0

package buffers

import (
	"fmt"
	"math"

	"github.com/ik5/rawpcm/audio"
)

// Interleaved stores frame-major samples in a flat slice.
type Interleaved[T any] struct {
	data     []T
	channels int
	frames   int
}

var (
	_ audio.ConverterMut[float32]  = (*Interleaved[float32])(nil)
	_ audio.FrameReader[float32]   = (*Interleaved[float32])(nil)
	_ audio.FrameWriter[float32]   = (*Interleaved[float32])(nil)
	_ audio.ChannelReader[float32] = (*Interleaved[float32])(nil)
	_ audio.ChannelWriter[float32] = (*Interleaved[float32])(nil)
)

// NewInterleaved wraps data, which must hold at least channels*frames
// samples. The slice is borrowed.
func NewInterleaved[T any](data []T, channels, frames int) (*Interleaved[T], error) {
	if err := audio.CheckLength(len(data), channels, frames, 1); err != nil {
		return nil, err
	}
	return &Interleaved[T]{data: data, channels: channels, frames: frames}, nil
}

// MakeInterleaved allocates a zeroed buffer. Like make, it panics when the
// geometry is negative or too large to allocate.
func MakeInterleaved[T any](channels, frames int) *Interleaved[T] {
	return &Interleaved[T]{
		data:     make([]T, samples(channels, frames)),
		channels: channels,
		frames:   frames,
	}
}

func (b *Interleaved[T]) Channels() int { return b.channels }
func (b *Interleaved[T]) Frames() int   { return b.frames }

// Data returns the backing samples of the buffer geometry.
func (b *Interleaved[T]) Data() []T { return b.data[:b.channels*b.frames] }

func (b *Interleaved[T]) Get(channel, frame int) (T, error) {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		var zero T
		return zero, err
	}
	return b.data[frame*b.channels+channel], nil
}

func (b *Interleaved[T]) Set(channel, frame int, v T) error {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		return err
	}
	b.data[frame*b.channels+channel] = v
	return nil
}

func (b *Interleaved[T]) ReadFrame(frame, start int, dst []T) error {
	copy(dst, b.data[frame*b.channels+start:])
	return nil
}

func (b *Interleaved[T]) WriteFrame(frame, start int, src []T) error {
	copy(b.data[frame*b.channels+start:], src)
	return nil
}

func (b *Interleaved[T]) ReadChannel(channel, start int, dst []T) error {
	i := start*b.channels + channel
	for n := range dst {
		dst[n] = b.data[i]
		i += b.channels
	}
	return nil
}

func (b *Interleaved[T]) WriteChannel(channel, start int, src []T) error {
	i := start*b.channels + channel
	for _, v := range src {
		b.data[i] = v
		i += b.channels
	}
	return nil
}

// Sequential stores channel-major samples in a flat slice.
type Sequential[T any] struct {
	data     []T
	channels int
	frames   int
}

var (
	_ audio.ConverterMut[float32]  = (*Sequential[float32])(nil)
	_ audio.ChannelReader[float32] = (*Sequential[float32])(nil)
	_ audio.ChannelWriter[float32] = (*Sequential[float32])(nil)
)

func NewSequential[T any](data []T, channels, frames int) (*Sequential[T], error) {
	if err := audio.CheckLength(len(data), channels, frames, 1); err != nil {
		return nil, err
	}
	return &Sequential[T]{data: data, channels: channels, frames: frames}, nil
}

// MakeSequential allocates a zeroed buffer. It panics like MakeInterleaved.
func MakeSequential[T any](channels, frames int) *Sequential[T] {
	return &Sequential[T]{
		data:     make([]T, samples(channels, frames)),
		channels: channels,
		frames:   frames,
	}
}

func (b *Sequential[T]) Channels() int { return b.channels }
func (b *Sequential[T]) Frames() int   { return b.frames }
func (b *Sequential[T]) Data() []T     { return b.data[:b.channels*b.frames] }

func (b *Sequential[T]) Get(channel, frame int) (T, error) {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		var zero T
		return zero, err
	}
	return b.data[channel*b.frames+frame], nil
}

func (b *Sequential[T]) Set(channel, frame int, v T) error {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		return err
	}
	b.data[channel*b.frames+frame] = v
	return nil
}

func (b *Sequential[T]) ReadChannel(channel, start int, dst []T) error {
	copy(dst, b.data[channel*b.frames+start:])
	return nil
}

func (b *Sequential[T]) WriteChannel(channel, start int, src []T) error {
	copy(b.data[channel*b.frames+start:], src)
	return nil
}

// Channels stores each channel in its own slice.
type Channels[T any] struct {
	data   [][]T
	frames int
}

var (
	_ audio.ConverterMut[float32]  = (*Channels[float32])(nil)
	_ audio.ChannelReader[float32] = (*Channels[float32])(nil)
	_ audio.ChannelWriter[float32] = (*Channels[float32])(nil)
)

// NewChannels wraps one slice per channel. All slices must have the same
// length, which becomes the frame count.
func NewChannels[T any](data [][]T) (*Channels[T], error) {
	frames := 0
	if len(data) > 0 {
		frames = len(data[0])
	}
	for ch, c := range data {
		if len(c) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				audio.ErrShapeMismatch, ch, len(c), frames)
		}
	}
	return &Channels[T]{data: data, frames: frames}, nil
}

// MakeChannels allocates one zeroed slice per channel. It panics like
// MakeInterleaved.
func MakeChannels[T any](channels, frames int) *Channels[T] {
	samples(channels, frames)

	data := make([][]T, channels)
	for ch := range data {
		data[ch] = make([]T, frames)
	}
	return &Channels[T]{data: data, frames: frames}
}

func (b *Channels[T]) Channels() int { return len(b.data) }
func (b *Channels[T]) Frames() int   { return b.frames }
func (b *Channels[T]) Data() [][]T   { return b.data }

func (b *Channels[T]) Get(channel, frame int) (T, error) {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		var zero T
		return zero, err
	}
	return b.data[channel][frame], nil
}

func (b *Channels[T]) Set(channel, frame int, v T) error {
	if err := audio.CheckBounds(b, channel, frame); err != nil {
		return err
	}
	b.data[channel][frame] = v
	return nil
}

func (b *Channels[T]) ReadChannel(channel, start int, dst []T) error {
	copy(dst, b.data[channel][start:])
	return nil
}

func (b *Channels[T]) WriteChannel(channel, start int, src []T) error {
	copy(b.data[channel][start:], src)
	return nil
}

// samples returns channels*frames or panics if the product is negative or
// overflows.
func samples(channels, frames int) int {
	if err := audio.CheckLength(math.MaxInt, channels, frames, 1); err != nil {
		panic("buffers: " + err.Error())
	}
	return channels * frames
}
