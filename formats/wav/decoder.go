// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// WAVE format tags found in the fmt chunk.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

type source struct {
	r          io.Reader
	format     sample.Format
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// Format reports the encoding of the PCM data in the file.
func (s *source) Format() sample.Format { return s.format }

// ReadSamples decodes whole frames only; a dst shorter than one frame reads
// nothing.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}
	return sample.ReadSamples(s.r, dst, s.format)
}

type Decoder struct{}

// Decode parses the RIFF headers of r and returns a Source positioned at the
// start of the PCM data. Readers that cannot seek are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	f, err := formatOf(dec.WavAudioFormat, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDataChunk, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoDataChunk
	}

	// The chunk size includes the pad byte of odd sized data, drop it along
	// with any other partial frame.
	block := int(dec.NumChans) * f.Width()
	size := dec.PCMSize - dec.PCMSize%block

	return &source{
		r:          io.LimitReader(dec.PCMChunk, int64(size)),
		format:     f,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

// formatOf maps a fmt chunk to a sample format. Extensible files are read as
// integer PCM, the sub format GUID is not inspected.
func formatOf(tag uint16, bits int) (sample.Format, error) {
	var kind sample.Kind
	switch tag {
	case formatPCM, formatExtensible:
		kind = sample.Signed
		if bits == 8 {
			kind = sample.Unsigned
		}
	case formatIEEEFloat:
		kind = sample.Float
	default:
		return 0, fmt.Errorf("%w: format tag %#x", ErrUnsupportedSampleFormat, tag)
	}

	f, err := sample.FormatFor(kind, bits, false)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedSampleFormat, err)
	}
	return f, nil
}
