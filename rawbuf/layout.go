// SPDX-License-Identifier: EPL-2.0

package rawbuf

import (
	"fmt"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// layout maps (channel, frame) to a byte offset. The byte distance between
// neighbouring frames of one channel is frameStep, between neighbouring
// channels of one frame it is channelStep.
type layout struct {
	format      sample.Format
	channels    int
	frames      int
	frameStep   int
	channelStep int
}

func newLayout(n int, f sample.Format, channels, frames int, interleaved bool) (layout, error) {
	if !f.Valid() {
		return layout{}, fmt.Errorf("%w: %s", sample.ErrUnknownFormat, f)
	}
	if err := audio.CheckLength(n, channels, frames, f.Width()); err != nil {
		return layout{}, err
	}

	l := layout{format: f, channels: channels, frames: frames}
	w := f.Width()
	if interleaved {
		l.channelStep, l.frameStep = w, channels*w
	} else {
		l.channelStep, l.frameStep = frames*w, w
	}
	return l, nil
}

func (l layout) Channels() int { return l.channels }
func (l layout) Frames() int   { return l.frames }

// Format returns the encoding of the underlying bytes.
func (l layout) Format() sample.Format { return l.format }

func (l layout) offset(channel, frame int) int {
	return channel*l.channelStep + frame*l.frameStep
}

// FrameCount returns how many whole frames of the given channel count fit
// in n bytes of format f.
func FrameCount(n int, f sample.Format, channels int) int {
	if channels <= 0 || !f.Valid() {
		return 0
	}
	return n / (channels * f.Width())
}

// get decodes the sample at (channel, frame) after a bounds check.
func get[T sample.Normalized](l layout, data []byte, channel, frame int) (T, error) {
	if err := audio.CheckBounds(l, channel, frame); err != nil {
		return 0, err
	}
	v, err := sample.Decode(data[l.offset(channel, frame):], l.format)
	return T(v), err
}

func set[T sample.Normalized](l layout, data []byte, channel, frame int, v T) error {
	if err := audio.CheckBounds(l, channel, frame); err != nil {
		return err
	}
	return sample.Encode(data[l.offset(channel, frame):], float64(v), l.format)
}

// decodeRun decodes len(dst) samples starting at byte off, step bytes apart.
func decodeRun[T sample.Normalized](data []byte, off, step int, f sample.Format, dst []T) error {
	for i := range dst {
		v, err := sample.Decode(data[off:], f)
		if err != nil {
			return err
		}
		dst[i] = T(v)
		off += step
	}
	return nil
}

func encodeRun[T sample.Normalized](data []byte, off, step int, f sample.Format, src []T) error {
	for _, v := range src {
		if err := sample.Encode(data[off:], float64(v), f); err != nil {
			return err
		}
		off += step
	}
	return nil
}
