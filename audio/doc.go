// SPDX-License-Identifier: EPL-2.0

// Package audio defines layout independent access to audio buffers.
//
// A buffer is a logical 2-D array of samples indexed by (channel, frame).
// Whether the storage is interleaved (all channels of a frame next to each
// other), sequential (all frames of a channel next to each other) or
// something else entirely is hidden behind a small set of capabilities:
//
//   - Converter and ConverterMut: Get and Set of a single sample.
//   - AudioBuffer and AudioBufferMut: iteration and bulk slice copies.
//   - AudioBufferStats: peak, RMS and peak-to-peak levels, for numeric
//     sample types only.
//
// Generic code is written against the smallest capability it needs.
//
// # Converters
//
// A storage type only has to implement Converter (or ConverterMut):
//
//	type Converter[T any] interface {
//	    Channels() int
//	    Frames() int
//	    Get(channel, frame int) (T, error)
//	}
//
// Everything else is provided by package level functions that work on any
// Converter: ReadChannel, ReadFrame, WriteChannel, WriteFrame, Channel,
// Frame, AllChannels, AllFrames, Copy, ReadInterleaved and WriteInterleaved.
//
// The slice functions fall back to one Get or Set per sample. A storage type
// that can do better implements ChannelReader, FrameReader, ChannelWriter or
// FrameWriter and the functions call it instead, after validating the range:
//
//	func (b *Planar) ReadChannel(channel, start int, dst []float32) error {
//	    copy(dst, b.data[channel][start:])
//	    return nil
//	}
//
// # Buffers
//
// NewBuffer and NewBufferMut lift a Converter to an AudioBuffer:
//
//	buf := audio.NewBuffer(conv)
//	seq, err := buf.Channel(0)
//	for v := range seq {
//	    // ...
//	}
//
// A Buffer built from a read-only Converter has no mutating methods, and
// AsMut reports ErrUnsupportedCapability for it.
//
// # Statistics
//
// NewStats adds AudioBufferStats to a buffer of any numeric sample type.
// StatsOf does the same check at run time and returns
// ErrUnsupportedCapability when the samples are not numbers:
//
//	st, err := audio.StatsOf(buf)
//	if err != nil {
//	    return err
//	}
//	rms, err := st.ChannelRMS(0)
//
// # Errors
//
// Coordinates or ranges outside the buffer fail with ErrIndexOutOfBounds.
// Nothing is clamped.
//
// # Sources
//
// Source is a stream of interleaved float32 samples produced by a decoder
// in the formats packages. The Registry maps a format name or file
// extension to its Decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode(".wav", f)
//
// A Source signals its end with io.EOF:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Buffers carry no locks. Callers that share a buffer between goroutines
// must synchronize access themselves.
package audio
