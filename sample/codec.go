// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode converts the first Width() bytes of src into a normalized value.
//
// Integer formats are divided by Scale(), so the largest code maps to +1.0
// and the smallest code maps slightly below -1.0. Float formats are returned
// as stored, without scaling or clipping.
func Decode(src []byte, f Format) (float64, error) {
	if err := check(len(src), f); err != nil {
		return 0, err
	}
	return decodeValue(src, f), nil
}

// Encode writes the normalized value v into the first Width() bytes of dst.
//
// Integer formats are scaled by Scale(), rounded half away from zero and
// clipped to the representable range. Clipping is silent. NaN encodes as
// silence. Float formats are stored as is, F32 formats narrow the value.
func Encode(dst []byte, v float64, f Format) error {
	if err := check(len(dst), f); err != nil {
		return err
	}
	encodeValue(dst, v, f)
	return nil
}

// DecodeInt returns the raw code point stored in src for an integer format,
// with the U8 offset removed. Float formats are truncated toward zero.
func DecodeInt(src []byte, f Format) (int64, error) {
	if err := check(len(src), f); err != nil {
		return 0, err
	}
	if !f.IsInteger() {
		return int64(decodeValue(src, f)), nil
	}
	return readInt(src, f), nil
}

// EncodeInt stores the raw code point v, saturating it to the range of f.
func EncodeInt(dst []byte, v int64, f Format) error {
	if err := check(len(dst), f); err != nil {
		return err
	}
	if !f.IsInteger() {
		encodeValue(dst, float64(v), f)
		return nil
	}
	writeInt(dst, min(max(v, f.MinInt()), f.MaxInt()), f)
	return nil
}

// Normalize maps a raw integer code point of f to a normalized value.
func Normalize(v int64, f Format) float64 {
	return float64(v) / f.Scale()
}

// Quantize maps a normalized value to the nearest code point of f,
// clipping values outside the representable range.
func Quantize(v float64, f Format) int64 {
	if math.IsNaN(v) {
		return 0
	}
	lo, hi := f.MinInt(), f.MaxInt()
	x := round(v * f.Scale())
	if x >= float64(hi) {
		return hi
	}
	if x <= float64(lo) {
		return lo
	}
	return int64(x)
}

// round is the single rounding rule of the codec.
func round(x float64) float64 {
	return math.Round(x)
}

func check(n int, f Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if n < f.Width() {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrTruncatedData, f, f.Width(), n)
	}
	return nil
}

func decodeValue(src []byte, f Format) float64 {
	switch f {
	case F32LE:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case F32BE:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(src)))
	case F64LE:
		return math.Float64frombits(binary.LittleEndian.Uint64(src))
	case F64BE:
		return math.Float64frombits(binary.BigEndian.Uint64(src))
	default:
		return Normalize(readInt(src, f), f)
	}
}

func encodeValue(dst []byte, v float64, f Format) {
	switch f {
	case F32LE:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case F32BE:
		binary.BigEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case F64LE:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
	case F64BE:
		binary.BigEndian.PutUint64(dst, math.Float64bits(v))
	default:
		writeInt(dst, Quantize(v, f), f)
	}
}

func signExtend24(u uint32) int64 {
	return int64(int32(u<<8) >> 8)
}

func readInt(src []byte, f Format) int64 {
	switch f {
	case U8:
		return int64(src[0]) - 128
	case S8:
		return int64(int8(src[0]))
	case S16LE:
		return int64(int16(binary.LittleEndian.Uint16(src)))
	case S16BE:
		return int64(int16(binary.BigEndian.Uint16(src)))
	case S24LE3, S24LE4:
		return signExtend24(uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16)
	case S24BE3:
		return signExtend24(uint32(src[2]) | uint32(src[1])<<8 | uint32(src[0])<<16)
	case S24BE4:
		return signExtend24(uint32(src[3]) | uint32(src[2])<<8 | uint32(src[1])<<16)
	case S32LE:
		return int64(int32(binary.LittleEndian.Uint32(src)))
	case S32BE:
		return int64(int32(binary.BigEndian.Uint32(src)))
	}
	return 0
}

// writeInt expects v to be inside the range of f.
func writeInt(dst []byte, v int64, f Format) {
	switch f {
	case U8:
		dst[0] = byte(v + 128)
	case S8:
		dst[0] = byte(int8(v))
	case S16LE:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case S16BE:
		binary.BigEndian.PutUint16(dst, uint16(v))
	case S24LE3:
		dst[0], dst[1], dst[2] = byte(v), byte(v>>8), byte(v>>16)
	case S24LE4:
		dst[0], dst[1], dst[2], dst[3] = byte(v), byte(v>>8), byte(v>>16), 0
	case S24BE3:
		dst[0], dst[1], dst[2] = byte(v>>16), byte(v>>8), byte(v)
	case S24BE4:
		dst[0], dst[1], dst[2], dst[3] = 0, byte(v>>16), byte(v>>8), byte(v)
	case S32LE:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case S32BE:
		binary.BigEndian.PutUint32(dst, uint32(v))
	}
}
