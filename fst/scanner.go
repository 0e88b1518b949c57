// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fst

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// RootOffset is the offset of the root state.
	RootOffset = 4

	headerSize     = 2
	infoSize       = 3
	transitionSize = 5

	nonFinalBit     = 0x8000
	transitionsMask = 0x7FFF

	maxStateSize = headerSize + infoSize + transitionsMask*transitionSize
)

var (
	// ErrFormat indicates that the automaton data is malformed.
	ErrFormat = errors.New("invalid automaton")

	// ErrTruncated indicates that the automaton data ended in the middle of
	// a state record or before the declared size was reached.
	ErrTruncated = fmt.Errorf("%w: truncated", ErrFormat)
)

// Scanner scans the state records of a .bin file from start to end.
type Scanner struct {
	s    *bufio.Scanner
	size uint32

	// pos is the offset of the next record.
	pos uint32

	// offset is the offset of the current record.
	offset uint32
}

// NewScanner reads the automaton header from r and returns a Scanner over
// its state records.
func NewScanner(r io.Reader) (*Scanner, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrTruncated, err)
	}
	size := int32(binary.BigEndian.Uint32(hdr[:])) //nolint:gosec // size is a signed integer.
	if size < RootOffset {
		return nil, fmt.Errorf("%w: bad size: %d", ErrFormat, size)
	}

	s := &Scanner{
		s:    bufio.NewScanner(bufio.NewReader(r)),
		size: uint32(size),
		pos:  RootOffset,
	}
	s.s.Buffer(make([]byte, 0, 64*1024), maxStateSize)
	s.s.Split(splitState)
	return s, nil
}

// Size returns the declared size of the automaton in bytes.
func (s *Scanner) Size() uint32 {
	return s.size
}

// Scan advances to the next state record. It returns false when the declared
// size has been reached or an error occurs.
func (s *Scanner) Scan() bool {
	if s.pos >= s.size {
		return false
	}
	if !s.s.Scan() {
		return false
	}
	s.offset = s.pos
	s.pos += uint32(len(s.s.Bytes())) //nolint:gosec // bounded by maxStateSize.
	return true
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	err := s.s.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: state at offset %d: %w", ErrFormat, s.pos, err)
	}
	return fmt.Errorf("state at offset %d: %w", s.pos, err)
}

// State decodes the current state record.
func (s *Scanner) State() *State {
	b := s.s.Bytes()
	h := binary.BigEndian.Uint16(b)
	b = b[headerSize:]

	st := &State{
		Offset: s.offset,
		Final:  h&nonFinalBit == 0,
	}
	if st.Final {
		st.Info = uint24(b)
		b = b[infoSize:]
	}

	n := int(h & transitionsMask)
	if n > 0 {
		st.Transitions = make(map[uint16]uint32, n)
	}
	for ; n > 0; n-- {
		st.Transitions[binary.BigEndian.Uint16(b)] = uint24(b[2:])
		b = b[transitionSize:]
	}

	return st
}

// splitState splits a state record. Its length is determined by the header.
func splitState(data []byte, atEOF bool) (advance int, token []byte, err error) {
	size := headerSize
	if len(data) >= headerSize {
		h := binary.BigEndian.Uint16(data)
		if h&nonFinalBit == 0 {
			size += infoSize
		}
		size += int(h&transitionsMask) * transitionSize
		if len(data) >= size {
			return size, data[:size], nil
		}
	}

	// The Scanner only requests a record when one is expected so running out
	// of data is always an error.
	if atEOF {
		return 0, nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncated, size, len(data))
	}

	// Request more data.
	return 0, nil, nil
}

// uint24 decodes a 3 byte big endian unsigned integer.
func uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
