// Package stream reads a packed 2-bit sequence in fixed-size chunks.
//
// A Stream owns an immutable byte buffer and a cursor. Read hands out
// consecutive, non-overlapping chunks and is safe for concurrent callers.
package stream

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"
)

// DefaultChunkSize is the chunk size, in bytes, used when none is given.
const DefaultChunkSize = 512

// ErrInvalidChunkSize is returned by New for a chunk size below one byte.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

type Stream struct {
	data      []byte
	chunkSize int
	offset    atomic.Int64
}

// New returns a stream over data. The stream takes ownership of data; the
// caller must not modify it afterwards.
func New(data []byte, chunkSize int) (*Stream, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("stream: %w (got %d)", ErrInvalidChunkSize, chunkSize)
	}
	return &Stream{data: data, chunkSize: chunkSize}, nil
}

// Read returns the next chunk of up to ChunkSize bytes and advances the
// cursor past it. It returns an empty slice once the stream is at its end.
// The result aliases the stream buffer and must not be modified.
func (s *Stream) Read() []byte {
	if s.chunkSize <= 0 {
		panic("stream: Read on a stream without a chunk size")
	}
	size := int64(len(s.data))
	for {
		off := s.offset.Load()
		n := size - off
		if n <= 0 {
			return nil
		}
		if n > int64(s.chunkSize) {
			n = int64(s.chunkSize)
		}
		if s.offset.CompareAndSwap(off, off+n) {
			return s.data[off : off+n : off+n]
		}
	}
}

// Seek moves the cursor to offset, clamped to [0, Size()].
func (s *Stream) Seek(offset int) {
	switch {
	case offset < 0:
		offset = 0
	case offset > len(s.data):
		offset = len(s.data)
	}
	s.offset.Store(int64(offset))
}

// AdvanceToEnd moves the cursor to the end; later reads return nothing.
func (s *Stream) AdvanceToEnd() { s.Seek(len(s.data)) }

// Size is the length of the buffer in bytes.
func (s *Stream) Size() int { return len(s.data) }

// AtEnd reports whether every byte has been read.
func (s *Stream) AtEnd() bool { return s.offset.Load() >= int64(len(s.data)) }

func (s *Stream) ChunkSize() int { return s.chunkSize }

// Offset is the current cursor position in bytes.
func (s *Stream) Offset() int { return int(s.offset.Load()) }

// Clone returns an independent stream over the same buffer, starting at the
// current cursor.
func (s *Stream) Clone() *Stream {
	c := &Stream{data: s.data, chunkSize: s.chunkSize}
	c.offset.Store(s.offset.Load())
	return c
}

// Move transfers the buffer and cursor to a new stream. s is left empty
// with its cursor at zero.
func (s *Stream) Move() *Stream {
	m := &Stream{data: s.data, chunkSize: s.chunkSize}
	m.offset.Store(s.offset.Swap(0))
	s.data = nil
	return m
}

// Digest is the blake2b-256 sum of the whole buffer, independent of the cursor.
func (s *Stream) Digest() [32]byte {
	return blake2b.Sum256(s.data)
}
