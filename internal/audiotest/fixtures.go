// SPDX-License-Identifier: EPL-2.0

package audiotest

// RampValue is a distinct, exactly representable sample value for each
// (frame, channel) pair of a buffer with at most 100 channels and 100 frames:
// channel c, frame f holds (c*100+f)/16384, negated on odd frames.
func RampValue(frame, channel int) float32 {
	v := float32(channel*100+frame) / 16384
	if frame%2 == 1 {
		v = -v
	}
	return v
}

// Ramp returns one slice per channel filled with RampValue.
func Ramp(channels, frames int) [][]float32 {
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, frames)
		for f := range out[ch] {
			out[ch][f] = RampValue(f, ch)
		}
	}
	return out
}

// Interleave flattens per-channel slices into frame-major order.
func Interleave[T any](chans [][]T) []T {
	if len(chans) == 0 {
		return nil
	}
	frames := len(chans[0])
	out := make([]T, 0, len(chans)*frames)
	for f := range frames {
		for ch := range chans {
			out = append(out, chans[ch][f])
		}
	}
	return out
}

// Sequential flattens per-channel slices into channel-major order.
func Sequential[T any](chans [][]T) []T {
	var out []T
	for _, c := range chans {
		out = append(out, c...)
	}
	return out
}
