// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"math/bits"
)

// Shape is the fixed geometry of a buffer.
type Shape interface {
	Channels() int
	Frames() int
}

// Converter gives read access to single samples by (channel, frame),
// independent of how the samples are laid out in storage.
//
// Get must return ErrIndexOutOfBounds for coordinates outside the shape.
// Implementations can use CheckBounds for this.
type Converter[T any] interface {
	Shape
	Get(channel, frame int) (T, error)
}

// ConverterMut adds write access to Converter.
type ConverterMut[T any] interface {
	Converter[T]
	Set(channel, frame int, v T) error
}

// CheckBounds validates a single (channel, frame) coordinate.
func CheckBounds(s Shape, channel, frame int) error {
	if channel < 0 || channel >= s.Channels() || frame < 0 || frame >= s.Frames() {
		return fmt.Errorf("%w: channel %d, frame %d outside %dx%d",
			ErrIndexOutOfBounds, channel, frame, s.Channels(), s.Frames())
	}
	return nil
}

// CheckChannelRange validates the n frames starting at start of one channel.
func CheckChannelRange(s Shape, channel, start, n int) error {
	if channel < 0 || channel >= s.Channels() {
		return fmt.Errorf("%w: channel %d outside %d channels", ErrIndexOutOfBounds, channel, s.Channels())
	}
	if !inRange(start, n, s.Frames()) {
		return fmt.Errorf("%w: frames [%d, %d) outside %d frames", ErrIndexOutOfBounds, start, start+n, s.Frames())
	}
	return nil
}

// CheckFrameRange validates the n channels starting at start of one frame.
func CheckFrameRange(s Shape, frame, start, n int) error {
	if frame < 0 || frame >= s.Frames() {
		return fmt.Errorf("%w: frame %d outside %d frames", ErrIndexOutOfBounds, frame, s.Frames())
	}
	if !inRange(start, n, s.Channels()) {
		return fmt.Errorf("%w: channels [%d, %d) outside %d channels", ErrIndexOutOfBounds, start, start+n, s.Channels())
	}
	return nil
}

// inRange reports whether [start, start+n) lies within [0, size). The sum
// is never formed, so huge values cannot wrap.
func inRange(start, n, size int) bool {
	return start >= 0 && n >= 0 && start <= size && n <= size-start
}

// CheckLength validates that storage of the given length holds
// channels*frames samples of perSample elements each.
func CheckLength(length, channels, frames, perSample int) error {
	if channels < 0 || frames < 0 || perSample < 0 {
		return fmt.Errorf("%w: negative geometry %dx%d", ErrBufferTooShort, channels, frames)
	}

	hi, need := bits.Mul64(uint64(channels), uint64(frames))
	if hi == 0 {
		hi, need = bits.Mul64(need, uint64(perSample))
	}
	if hi != 0 || need > math.MaxInt {
		return fmt.Errorf("%w: %dx%d samples overflow", ErrBufferTooShort, channels, frames)
	}
	if length < int(need) {
		return fmt.Errorf("%w: %d < %d", ErrBufferTooShort, length, need)
	}
	return nil
}

// ChannelReader is implemented by converters that can copy a channel range
// faster than one Get per sample. ReadChannel is only called with a
// validated range and must not pass its own receiver to the package level
// ReadChannel.
type ChannelReader[T any] interface {
	ReadChannel(channel, start int, dst []T) error
}

// FrameReader is the frame oriented counterpart of ChannelReader.
type FrameReader[T any] interface {
	ReadFrame(frame, start int, dst []T) error
}

// ChannelWriter is implemented by converters that can store a channel range
// faster than one Set per sample.
type ChannelWriter[T any] interface {
	WriteChannel(channel, start int, src []T) error
}

// FrameWriter is the frame oriented counterpart of ChannelWriter.
type FrameWriter[T any] interface {
	WriteFrame(frame, start int, src []T) error
}

// ReadChannel copies len(dst) samples of channel, beginning at frame start,
// into dst. The whole range must lie inside the buffer.
func ReadChannel[T any](c Converter[T], channel, start int, dst []T) error {
	if err := CheckChannelRange(c, channel, start, len(dst)); err != nil {
		return err
	}
	if r, ok := c.(ChannelReader[T]); ok {
		return r.ReadChannel(channel, start, dst)
	}

	for i := range dst {
		v, err := c.Get(channel, start+i)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFrame copies len(dst) samples of frame, beginning at channel start,
// into dst.
func ReadFrame[T any](c Converter[T], frame, start int, dst []T) error {
	if err := CheckFrameRange(c, frame, start, len(dst)); err != nil {
		return err
	}
	if r, ok := c.(FrameReader[T]); ok {
		return r.ReadFrame(frame, start, dst)
	}

	for i := range dst {
		v, err := c.Get(start+i, frame)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// WriteChannel stores src into channel, beginning at frame start.
func WriteChannel[T any](c ConverterMut[T], channel, start int, src []T) error {
	if err := CheckChannelRange(c, channel, start, len(src)); err != nil {
		return err
	}
	if w, ok := c.(ChannelWriter[T]); ok {
		return w.WriteChannel(channel, start, src)
	}

	for i, v := range src {
		if err := c.Set(channel, start+i, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFrame stores src into frame, beginning at channel start.
func WriteFrame[T any](c ConverterMut[T], frame, start int, src []T) error {
	if err := CheckFrameRange(c, frame, start, len(src)); err != nil {
		return err
	}
	if w, ok := c.(FrameWriter[T]); ok {
		return w.WriteFrame(frame, start, src)
	}

	for i, v := range src {
		if err := c.Set(start+i, frame, v); err != nil {
			return err
		}
	}
	return nil
}
