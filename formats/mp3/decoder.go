// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

// go-mp3 always produces interleaved stereo, 16 bit little endian.
const (
	outChannels = 2
	outFormat   = sample.S16LE
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
}

func (s *source) SampleRate() int       { return s.sampleRate }
func (s *source) Channels() int         { return outChannels }
func (s *source) Format() sample.Format { return outFormat }
func (s *source) Close() error          { return nil }

// ReadSamples decodes whole stereo frames into dst.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%outChannels]
	if len(dst) == 0 {
		return 0, nil
	}
	return sample.ReadSamples(s.dec, dst, outFormat)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
