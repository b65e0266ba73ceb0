// SPDX-License-Identifier: EPL-2.0

package rawpcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/buffers"
	"github.com/ik5/rawpcm/formats/aiff"
	"github.com/ik5/rawpcm/formats/flac"
	"github.com/ik5/rawpcm/formats/mp3"
	"github.com/ik5/rawpcm/formats/vorbis"
	"github.com/ik5/rawpcm/formats/wav"
	"github.com/ik5/rawpcm/sample"
)

// readSize is the number of samples read from a Source per call.
const readSize = 4096

// Decoders returns a registry with every decoder of this module, keyed by
// the usual file extensions.
func Decoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Load reads src to the end and returns its samples as an interleaved
// buffer. The source is not closed.
func Load(src audio.Source) (*buffers.Interleaved[float32], error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: source has %d channels", audio.ErrShapeMismatch, channels)
	}

	// Start with about a second of audio and let append grow it.
	samples := make([]float32, 0, max(src.SampleRate(), 1)*channels)
	buf := make([]float32, max(readSize/channels, 1)*channels)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return wrap(samples, channels)
}

// DecodeRaw reads headerless interleaved PCM in format f from r.
// When the stream ends inside a sample, the whole frames read before it are
// returned along with sample.ErrTruncatedData.
func DecodeRaw(r io.Reader, f sample.Format, channels int) (*buffers.Interleaved[float32], error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrShapeMismatch, channels)
	}

	samples, err := sample.ReadAllSamples[float32](r, f)
	if errors.Is(err, sample.ErrTruncatedData) {
		samples = samples[:len(samples)-len(samples)%channels]
		buf, _ := buffers.NewInterleaved(samples, channels, len(samples)/channels)
		return buf, err
	}
	if err != nil {
		return nil, err
	}
	return wrap(samples, channels)
}

func wrap(samples []float32, channels int) (*buffers.Interleaved[float32], error) {
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", audio.ErrInvalidDstSize, len(samples), channels)
	}
	return buffers.NewInterleaved(samples, channels, len(samples)/channels)
}

// Encode writes every frame of c to w as interleaved PCM in format f and
// returns the number of samples written.
func Encode(w io.Writer, c audio.Converter[float32], f sample.Format) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %s", sample.ErrUnknownFormat, f)
	}

	channels := c.Channels()
	if channels == 0 {
		return 0, nil
	}

	// Interleaved storage is written without a copy.
	if in, ok := c.(*buffers.Interleaved[float32]); ok {
		return sample.WriteSamples(w, in.Data(), f)
	}

	chunkFrames := max(readSize/channels, 1)
	buf := make([]float32, chunkFrames*channels)

	written := 0
	for start := 0; start < c.Frames(); start += chunkFrames {
		frames := min(chunkFrames, c.Frames()-start)
		if _, err := audio.ReadInterleaved(c, start, buf[:frames*channels]); err != nil {
			return written, err
		}

		n, err := sample.WriteSamples(w, buf[:frames*channels], f)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
