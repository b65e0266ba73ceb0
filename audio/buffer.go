// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// AudioBuffer is a Converter with iteration and bulk slice reads.
type AudioBuffer[T any] interface {
	Converter[T]

	ReadChannel(channel, start int, dst []T) error
	ReadFrame(frame, start int, dst []T) error

	// Channel returns the samples of one channel, frame by frame.
	// The sequence can be ranged over any number of times.
	Channel(channel int) (iter.Seq[T], error)
	// Frame returns the samples of one frame, channel by channel.
	Frame(frame int) (iter.Seq[T], error)
	AllChannels() iter.Seq2[int, iter.Seq[T]]
	AllFrames() iter.Seq2[int, iter.Seq[T]]
}

// AudioBufferMut is an AudioBuffer that can also be written.
type AudioBufferMut[T any] interface {
	AudioBuffer[T]

	Set(channel, frame int, v T) error
	WriteChannel(channel, start int, src []T) error
	WriteFrame(frame, start int, src []T) error
}

// Buffer lifts a Converter to an AudioBuffer. Every method is expressed
// through the package level functions, so the optional reader interfaces
// of the wrapped converter are used when present.
//
// Buffer has no mutating methods even when the converter has them.
type Buffer[T any] struct {
	c Converter[T]
}

var _ AudioBuffer[float32] = (*Buffer[float32])(nil)

func NewBuffer[T any](c Converter[T]) *Buffer[T] {
	return &Buffer[T]{c: c}
}

func (b *Buffer[T]) Channels() int { return b.c.Channels() }
func (b *Buffer[T]) Frames() int   { return b.c.Frames() }

func (b *Buffer[T]) Get(channel, frame int) (T, error) {
	return b.c.Get(channel, frame)
}

func (b *Buffer[T]) ReadChannel(channel, start int, dst []T) error {
	return ReadChannel(b.c, channel, start, dst)
}

func (b *Buffer[T]) ReadFrame(frame, start int, dst []T) error {
	return ReadFrame(b.c, frame, start, dst)
}

func (b *Buffer[T]) Channel(channel int) (iter.Seq[T], error) {
	return Channel(b.c, channel)
}

func (b *Buffer[T]) Frame(frame int) (iter.Seq[T], error) {
	return Frame(b.c, frame)
}

func (b *Buffer[T]) AllChannels() iter.Seq2[int, iter.Seq[T]] { return AllChannels(b.c) }
func (b *Buffer[T]) AllFrames() iter.Seq2[int, iter.Seq[T]]   { return AllFrames(b.c) }

// BufferMut lifts a ConverterMut to an AudioBufferMut.
type BufferMut[T any] struct {
	Buffer[T]
	mc ConverterMut[T]
}

var _ AudioBufferMut[float32] = (*BufferMut[float32])(nil)

func NewBufferMut[T any](c ConverterMut[T]) *BufferMut[T] {
	return &BufferMut[T]{Buffer: Buffer[T]{c: c}, mc: c}
}

func (b *BufferMut[T]) Set(channel, frame int, v T) error {
	return b.mc.Set(channel, frame, v)
}

func (b *BufferMut[T]) WriteChannel(channel, start int, src []T) error {
	return WriteChannel(b.mc, channel, start, src)
}

func (b *BufferMut[T]) WriteFrame(frame, start int, src []T) error {
	return WriteFrame(b.mc, frame, start, src)
}

// AsMut returns b as an AudioBufferMut, or ErrUnsupportedCapability if b
// is read-only.
func AsMut[T any](b AudioBuffer[T]) (AudioBufferMut[T], error) {
	if m, ok := b.(AudioBufferMut[T]); ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %T is read-only", ErrUnsupportedCapability, b)
}

// Channel returns a restartable sequence over the samples of one channel.
func Channel[T any](c Converter[T], channel int) (iter.Seq[T], error) {
	if channel < 0 || channel >= c.Channels() {
		return nil, fmt.Errorf("%w: channel %d outside %d channels", ErrIndexOutOfBounds, channel, c.Channels())
	}
	return channelSeq(c, channel), nil
}

// Frame returns a restartable sequence over the samples of one frame.
func Frame[T any](c Converter[T], frame int) (iter.Seq[T], error) {
	if frame < 0 || frame >= c.Frames() {
		return nil, fmt.Errorf("%w: frame %d outside %d frames", ErrIndexOutOfBounds, frame, c.Frames())
	}
	return frameSeq(c, frame), nil
}

// AllChannels yields every channel index with the sequence of its samples.
func AllChannels[T any](c Converter[T]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for ch := range c.Channels() {
			if !yield(ch, channelSeq(c, ch)) {
				return
			}
		}
	}
}

// AllFrames yields every frame index with the sequence of its samples.
func AllFrames[T any](c Converter[T]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for f := range c.Frames() {
			if !yield(f, frameSeq(c, f)) {
				return
			}
		}
	}
}

// The sequences stop early if Get fails, which only happens when the
// geometry changed under them.
func channelSeq[T any](c Converter[T], channel int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for f := range c.Frames() {
			v, err := c.Get(channel, f)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func frameSeq[T any](c Converter[T], frame int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ch := range c.Channels() {
			v, err := c.Get(ch, frame)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Copy copies every sample of src into dst. Both must have the same shape.
// It is the way to move audio between layouts, e.g. interleaved to sequential.
func Copy[T any](dst ConverterMut[T], src Converter[T]) error {
	if dst.Channels() != src.Channels() || dst.Frames() != src.Frames() {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrShapeMismatch,
			src.Channels(), src.Frames(), dst.Channels(), dst.Frames())
	}

	tmp := make([]T, src.Frames())
	for ch := range src.Channels() {
		if err := ReadChannel(src, ch, 0, tmp); err != nil {
			return err
		}
		if err := WriteChannel(dst, ch, 0, tmp); err != nil {
			return err
		}
	}
	return nil
}

// ReadInterleaved copies whole frames, beginning at frame start, into dst in
// interleaved order. len(dst) must be a multiple of the channel count.
// It returns the number of frames copied.
func ReadInterleaved[T any](c Converter[T], start int, dst []T) (int, error) {
	channels := c.Channels()
	if channels == 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / channels
	if !inRange(start, frames, c.Frames()) {
		return 0, fmt.Errorf("%w: frames [%d, %d) outside %d frames", ErrIndexOutOfBounds, start, start+frames, c.Frames())
	}

	for f := range frames {
		if err := ReadFrame(c, start+f, 0, dst[f*channels:(f+1)*channels]); err != nil {
			return f, err
		}
	}
	return frames, nil
}

// WriteInterleaved stores the interleaved frames of src, beginning at frame
// start. len(src) must be a multiple of the channel count.
func WriteInterleaved[T any](c ConverterMut[T], start int, src []T) (int, error) {
	channels := c.Channels()
	if channels == 0 || len(src)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(src) / channels
	if !inRange(start, frames, c.Frames()) {
		return 0, fmt.Errorf("%w: frames [%d, %d) outside %d frames", ErrIndexOutOfBounds, start, start+frames, c.Frames())
	}

	for f := range frames {
		if err := WriteFrame(c, start+f, 0, src[f*channels:(f+1)*channels]); err != nil {
			return f, err
		}
	}
	return frames, nil
}
