// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"
	"io"
)

// Normalized is the set of types that can hold a normalized sample.
type Normalized interface {
	~float32 | ~float64
}

// chunkSize is the number of bytes moved per Read/Write call on the stream.
const chunkSize = 8192

func samplesPerChunk(f Format) int {
	return max(chunkSize/f.Width(), 1)
}

// WriteSamples encodes values with format f and writes them to w.
//
// It returns the number of whole samples accepted by w. When w fails part way
// the samples written before the failure stay written and are counted.
func WriteSamples[T Normalized](w io.Writer, values []T, f Format) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if len(values) == 0 {
		return 0, nil
	}

	width := f.Width()
	per := samplesPerChunk(f)
	buf := make([]byte, min(len(values), per)*width)

	written := 0
	for i := 0; i < len(values); i += per {
		end := min(i+per, len(values))
		chunk := buf[:(end-i)*width]

		for j, v := range values[i:end] {
			encodeValue(chunk[j*width:], float64(v), f)
		}

		n, err := w.Write(chunk)
		written += n / width
		if err != nil {
			return written, err
		}
		if n < len(chunk) {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}

// ReadSamples reads and decodes samples from r until dst is full.
//
// When the stream ends on a sample boundary before dst is full the number of
// samples read is returned with a nil error; a following call returns 0 and
// io.EOF. A partial trailing sample returns ErrTruncatedData together with
// the count of whole samples stored in dst.
func ReadSamples[T Normalized](r io.Reader, dst []T, f Format) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if len(dst) == 0 {
		return 0, nil
	}

	width := f.Width()
	per := samplesPerChunk(f)
	buf := make([]byte, min(len(dst), per)*width)

	n := 0
	for n < len(dst) {
		want := min(len(dst)-n, per)
		got, err := io.ReadFull(r, buf[:want*width])

		whole := got / width
		for j := range whole {
			dst[n+j] = T(decodeValue(buf[j*width:], f))
		}
		n += whole

		done, err := endOfStream(got, width, err)
		if err != nil {
			return n, err
		}
		if done {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
	}

	return n, nil
}

// AppendSamples reads r to the end, appending the decoded samples to dst.
//
// The number of samples read is len(result)-len(dst). On ErrTruncatedData the
// whole samples that preceded the partial one are still appended.
func AppendSamples[T Normalized](dst []T, r io.Reader, f Format) ([]T, error) {
	if !f.Valid() {
		return dst, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	width := f.Width()
	buf := make([]byte, samplesPerChunk(f)*width)

	for {
		got, err := io.ReadFull(r, buf)

		whole := got / width
		for j := range whole {
			dst = append(dst, T(decodeValue(buf[j*width:], f)))
		}

		done, err := endOfStream(got, width, err)
		if err != nil {
			return dst, err
		}
		if done {
			return dst, nil
		}
	}
}

// ReadAllSamples decodes every sample of r into a new slice.
func ReadAllSamples[T Normalized](r io.Reader, f Format) ([]T, error) {
	return AppendSamples[T](nil, r, f)
}

// endOfStream interprets the result of io.ReadFull for a read of whole
// samples. The bool is true once the source is exhausted.
func endOfStream(got, width int, err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF):
		return true, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		if rem := got % width; rem != 0 {
			return true, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedData, rem)
		}
		return true, nil
	default:
		return true, err
	}
}
