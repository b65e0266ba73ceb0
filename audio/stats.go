// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
	"math"
)

// Number is the set of sample types that statistics can be computed for.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// AudioBufferStats computes level statistics over a channel or a frame.
// Empty ranges (a buffer with no frames or no channels) yield 0.
type AudioBufferStats interface {
	ChannelPeak(channel int) (float64, error)
	ChannelRMS(channel int) (float64, error)
	ChannelPeakToPeak(channel int) (float64, error)

	FramePeak(frame int) (float64, error)
	FrameRMS(frame int) (float64, error)
	FramePeakToPeak(frame int) (float64, error)
}

// Stats adds AudioBufferStats to a numeric AudioBuffer. The values are in
// the units of T; for normalized float buffers that is full scale.
type Stats[T Number] struct {
	AudioBuffer[T]
}

var _ AudioBufferStats = (*Stats[float32])(nil)

func NewStats[T Number](b AudioBuffer[T]) *Stats[T] {
	return &Stats[T]{AudioBuffer: b}
}

// StatsOf returns the statistics of b when T is a numeric type and
// ErrUnsupportedCapability otherwise, e.g. for packed [3]byte samples.
func StatsOf[T any](b AudioBuffer[T]) (AudioBufferStats, error) {
	switch b := any(b).(type) {
	case AudioBuffer[float32]:
		return NewStats(b), nil
	case AudioBuffer[float64]:
		return NewStats(b), nil
	case AudioBuffer[int8]:
		return NewStats(b), nil
	case AudioBuffer[int16]:
		return NewStats(b), nil
	case AudioBuffer[int32]:
		return NewStats(b), nil
	case AudioBuffer[int64]:
		return NewStats(b), nil
	case AudioBuffer[int]:
		return NewStats(b), nil
	case AudioBuffer[uint8]:
		return NewStats(b), nil
	case AudioBuffer[uint16]:
		return NewStats(b), nil
	case AudioBuffer[uint32]:
		return NewStats(b), nil
	case AudioBuffer[uint64]:
		return NewStats(b), nil
	case AudioBuffer[uint]:
		return NewStats(b), nil
	}

	var zero T
	return nil, fmt.Errorf("%w: no statistics for %T samples", ErrUnsupportedCapability, zero)
}

func (s *Stats[T]) ChannelPeak(channel int) (float64, error) {
	seq, err := s.Channel(channel)
	if err != nil {
		return 0, err
	}
	return peak(seq), nil
}

func (s *Stats[T]) ChannelRMS(channel int) (float64, error) {
	seq, err := s.Channel(channel)
	if err != nil {
		return 0, err
	}
	return rms(seq), nil
}

func (s *Stats[T]) ChannelPeakToPeak(channel int) (float64, error) {
	seq, err := s.Channel(channel)
	if err != nil {
		return 0, err
	}
	return peakToPeak(seq), nil
}

func (s *Stats[T]) FramePeak(frame int) (float64, error) {
	seq, err := s.Frame(frame)
	if err != nil {
		return 0, err
	}
	return peak(seq), nil
}

func (s *Stats[T]) FrameRMS(frame int) (float64, error) {
	seq, err := s.Frame(frame)
	if err != nil {
		return 0, err
	}
	return rms(seq), nil
}

func (s *Stats[T]) FramePeakToPeak(frame int) (float64, error) {
	seq, err := s.Frame(frame)
	if err != nil {
		return 0, err
	}
	return peakToPeak(seq), nil
}

func peak[T Number](seq iter.Seq[T]) float64 {
	var m float64
	for v := range seq {
		m = max(m, math.Abs(float64(v)))
	}
	return m
}

func rms[T Number](seq iter.Seq[T]) float64 {
	var sum float64
	var n int
	for v := range seq {
		x := float64(v)
		sum += x * x
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}

// peakToPeak is the distance between the largest and the smallest value.
func peakToPeak[T Number](seq iter.Seq[T]) float64 {
	var lo, hi float64
	first := true
	for v := range seq {
		x := float64(v)
		if first {
			lo, hi, first = x, x, false
			continue
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return hi - lo
}
