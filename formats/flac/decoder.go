// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// frameReader is an interface for flac.Stream to allow testing.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

// source hands out the samples of one decoded FLAC frame at a time.
// Samples are left shifted into format's container before normalizing, so
// a 20 bit stream reads like S24LE3.
type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	format     sample.Format
	shift      uint

	block *frame.Frame
	pos   int
	eof   bool
}

func (s *source) SampleRate() int       { return s.sampleRate }
func (s *source) Channels() int         { return s.channels }
func (s *source) Format() sample.Format { return s.format }
func (s *source) Close() error          { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	dst = dst[:len(dst)-len(dst)%s.channels]

	n := 0
	for n < len(dst) {
		if s.block == nil {
			if err := s.next(); err == io.EOF {
				s.eof = true
				break
			} else if err != nil {
				return n, err
			}
		}

		frames := min((len(dst)-n)/s.channels, len(s.block.Subframes[0].Samples)-s.pos)
		for i := range frames {
			for ch, sub := range s.block.Subframes {
				v := int64(sub.Samples[s.pos+i]) << s.shift
				dst[n+i*s.channels+ch] = float32(sample.Normalize(v, s.format))
			}
		}
		n += frames * s.channels
		s.pos += frames

		if s.pos >= len(s.block.Subframes[0].Samples) {
			s.block = nil
		}
	}

	if n == 0 && s.eof {
		return 0, io.EOF
	}
	return n, nil
}

// next parses the following frame and checks its geometry.
func (s *source) next() error {
	f, err := s.dec.ParseNext()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("decoding flac: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes, stream has %d channels", ErrMalformedFrame, len(f.Subframes), s.channels)
	}
	size := len(f.Subframes[0].Samples)
	for ch, sub := range f.Subframes {
		if len(sub.Samples) != size {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrMalformedFrame, ch, len(sub.Samples), size)
		}
	}

	s.block, s.pos = f, 0
	return nil
}

type Decoder struct{}

// Decode reads the FLAC stream header of r. Frames are decoded lazily as
// samples are read.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	f, shift, err := formatOf(int(info.BitsPerSample))
	if err != nil {
		return nil, err
	}
	if info.NChannels == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrNotFlacFile)
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		format:     f,
		shift:      shift,
	}, nil
}

// formatOf picks the little endian signed container for a FLAC bit depth
// and the shift that moves samples into its top bits.
func formatOf(bits int) (sample.Format, uint, error) {
	if bits < 4 || bits > 32 {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	container := (bits + 7) / 8 * 8
	f, err := sample.FormatFor(sample.Signed, container, false)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	}
	return f, uint(container - bits), nil
}
