// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/rawpcm/audio"
	"github.com/ik5/rawpcm/sample"
)

const headerSize = 44

// Writable reports whether WriteWAV can store samples in format f: unsigned
// 8-bit, or any little-endian format with the sample filling its container.
func Writable(f sample.Format) bool {
	switch f {
	case sample.U8, sample.S16LE, sample.S24LE3, sample.S32LE, sample.F32LE, sample.F64LE:
		return true
	}
	return false
}

// WriteWAV writes a canonical 44 byte header followed by the interleaved
// samples encoded with format f. Integer formats are clipped on encode.
func WriteWAV[T sample.Normalized](w io.Writer, sampleRate, channels int, f sample.Format, samples []T) error {
	if !Writable(f) {
		return fmt.Errorf("%w: %s", ErrUnsupportedSampleFormat, f)
	}
	if channels <= 0 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", audio.ErrInvalidDstSize, len(samples), channels)
	}

	tag := uint16(formatPCM)
	if f.Kind() == sample.Float {
		tag = formatIEEEFloat
	}

	width := f.Width()
	blockAlign := uint16(channels * width)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(samples) * width)

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize+dataSize%2)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], tag)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitDepth()))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return err
	}

	if _, err := sample.WriteSamples(w, samples, f); err != nil {
		return err
	}

	// RIFF chunks are word aligned.
	if dataSize%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}
