package go_nano

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Stream builds hash preimages out of fixed-width protocol fields.
// It wraps bytes.Buffer and adds methods for writing Nano data structures.
//
// Preimages are raw concatenations: no length prefixes, no separators.
// Every field has a fixed width, so there is no framing ambiguity.
type Stream struct {
	*bytes.Buffer
}

// NewStream creates a new Stream from a byte slice.
func NewStream(buf []byte) *Stream {
	return &Stream{bytes.NewBuffer(buf)}
}

// newPreimage allocates a Stream sized for n bytes of fields.
func newPreimage(n int) *Stream {
	return NewStream(make([]byte, 0, n))
}

// WriteUint32 writes a big-endian uint32 to the stream.
// This is used for the seed derivation index.
func (s *Stream) WriteUint32(i uint32) error {
	var bts [4]byte
	binary.BigEndian.PutUint32(bts[:], i)
	_, err := s.Write(bts[:])
	return err
}

// WriteUint64 writes a big-endian uint64 to the stream.
func (s *Stream) WriteUint64(i uint64) error {
	var bts [8]byte
	binary.BigEndian.PutUint64(bts[:], i)
	_, err := s.Write(bts[:])
	return err
}

// ReadUint64 reads a big-endian uint64 from the stream.
func (s *Stream) ReadUint64() (uint64, error) {
	bts, err := s.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(bts), nil
}

// WriteFields writes each field in order.
func (s *Stream) WriteFields(fields ...[]byte) error {
	for _, f := range fields {
		if _, err := s.Write(f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFixed reads exactly n bytes or fails with ErrInvalidLength.
func (s *Stream) ReadFixed(n int) ([]byte, error) {
	if s.Len() < n {
		return nil, fmt.Errorf("stream has %d bytes, need %d: %w", s.Len(), n, ErrInvalidLength)
	}
	return s.Next(n), nil
}
