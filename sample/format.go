// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Kind is the numeric interpretation of a raw sample.
type Kind uint8

const (
	Unsigned Kind = iota + 1
	Signed
	Float
)

func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Format identifies one raw sample encoding.
// The zero value is not a valid format.
type Format uint8

const (
	// U8 is 8 bit unsigned integer, offset binary (0x80 is silence).
	U8 Format = iota + 1
	// S8 is 8 bit signed integer.
	S8
	S16LE
	S16BE
	// S24LE3 is 24 bit signed integer packed in 3 bytes, little endian.
	S24LE3
	S24BE3
	// S24LE4 is 24 bit signed integer in a 4 byte container, little endian.
	// The most significant byte is padding.
	S24LE4
	// S24BE4 is 24 bit signed integer in a 4 byte container, big endian.
	// The most significant (first) byte is padding.
	S24BE4
	S32LE
	S32BE
	F32LE
	F32BE
	F64LE
	F64BE
)

type formatInfo struct {
	name  string
	width int
	bits  int
	kind  Kind
	big   bool
}

var formatTable = [...]formatInfo{
	U8:     {"U8", 1, 8, Unsigned, false},
	S8:     {"S8", 1, 8, Signed, false},
	S16LE:  {"S16LE", 2, 16, Signed, false},
	S16BE:  {"S16BE", 2, 16, Signed, true},
	S24LE3: {"S24LE3", 3, 24, Signed, false},
	S24BE3: {"S24BE3", 3, 24, Signed, true},
	S24LE4: {"S24LE4", 4, 24, Signed, false},
	S24BE4: {"S24BE4", 4, 24, Signed, true},
	S32LE:  {"S32LE", 4, 32, Signed, false},
	S32BE:  {"S32BE", 4, 32, Signed, true},
	F32LE:  {"F32LE", 4, 32, Float, false},
	F32BE:  {"F32BE", 4, 32, Float, true},
	F64LE:  {"F64LE", 8, 64, Float, false},
	F64BE:  {"F64BE", 8, 64, Float, true},
}

func (f Format) info() formatInfo {
	if !f.Valid() {
		return formatInfo{}
	}
	return formatTable[f]
}

// Valid reports whether f is part of the catalogue.
func (f Format) Valid() bool {
	return f >= U8 && int(f) < len(formatTable)
}

// Width is the number of bytes used to store one sample.
func (f Format) Width() int { return f.info().width }

// BitDepth is the number of significant bits. It differs from Width()*8
// for the padded 24 bit formats.
func (f Format) BitDepth() int { return f.info().bits }

func (f Format) Kind() Kind { return f.info().kind }

// BigEndian reports the byte order of multi-byte formats.
// Single byte formats are always little endian.
func (f Format) BigEndian() bool { return f.info().big }

func (f Format) IsInteger() bool {
	k := f.Kind()
	return k == Signed || k == Unsigned
}

func (f Format) ByteOrder() binary.ByteOrder {
	if f.BigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// MaxInt is the largest raw code point of an integer format, expressed
// as a signed value (offset removed for U8).
func (f Format) MaxInt() int64 {
	if !f.IsInteger() {
		return 0
	}
	return 1<<(f.BitDepth()-1) - 1
}

// MinInt is the smallest raw code point of an integer format.
func (f Format) MinInt() int64 {
	if !f.IsInteger() {
		return 0
	}
	return -(1 << (f.BitDepth() - 1))
}

// Scale is the positive full-scale magnitude: the raw value that maps to +1.0.
// Float formats are not scaled and report 1.
func (f Format) Scale() float64 {
	if !f.IsInteger() {
		return 1
	}
	return float64(f.MaxInt())
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatTable[f].name
}

// Formats returns every format of the catalogue in declaration order.
func Formats() []Format {
	out := make([]Format, 0, len(formatTable)-1)
	for f := U8; int(f) < len(formatTable); f++ {
		out = append(out, f)
	}
	return out
}

// ParseFormat resolves a format by its name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFor finds the format matching a container description, as found in
// WAV or AIFF headers. For 24 bits the packed 3 byte layout is returned.
func FormatFor(kind Kind, bits int, bigEndian bool) (Format, error) {
	for _, f := range Formats() {
		info := formatTable[f]
		if info.kind != kind || info.bits != bits || info.width*8 != bits {
			continue
		}
		if info.width == 1 || info.big == bigEndian {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %d bit (big endian: %t)", ErrUnknownFormat, kind, bits, bigEndian)
}
