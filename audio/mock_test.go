package audio

import (
	"io"
)

// mockSource is a test helper that generates audio data for testing.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   func(frame int, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0.0
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for frame := range n {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// grid is a minimal planar ConverterMut. It only implements Get and Set, so
// every higher level operation runs through the default algorithms.
type grid[T any] struct {
	data [][]T
	gets int
	sets int
}

func newGrid[T any](channels, frames int) *grid[T] {
	data := make([][]T, channels)
	for ch := range data {
		data[ch] = make([]T, frames)
	}
	return &grid[T]{data: data}
}

func (g *grid[T]) Channels() int { return len(g.data) }

func (g *grid[T]) Frames() int {
	if len(g.data) == 0 {
		return 0
	}
	return len(g.data[0])
}

func (g *grid[T]) Get(channel, frame int) (T, error) {
	if err := CheckBounds(g, channel, frame); err != nil {
		var zero T
		return zero, err
	}
	g.gets++
	return g.data[channel][frame], nil
}

func (g *grid[T]) Set(channel, frame int, v T) error {
	if err := CheckBounds(g, channel, frame); err != nil {
		return err
	}
	g.sets++
	g.data[channel][frame] = v
	return nil
}

// readOnly hides the Set method of a converter.
type readOnly[T any] struct {
	Converter[T]
}

// fastGrid is a grid with channel overrides.
type fastGrid[T any] struct {
	*grid[T]
	channelReads  int
	channelWrites int
}

func (g *fastGrid[T]) ReadChannel(channel, start int, dst []T) error {
	g.channelReads++
	copy(dst, g.data[channel][start:])
	return nil
}

func (g *fastGrid[T]) WriteChannel(channel, start int, src []T) error {
	g.channelWrites++
	copy(g.data[channel][start:], src)
	return nil
}
