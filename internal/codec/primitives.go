package codec

import (
	"encoding/binary"
	"math"
)

// Append helpers build little-endian payloads. Strings carry a uint16
// length prefix; lists carry a uint32 count.

func AppendUint16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

func AppendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func AppendUint64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

func AppendInt64(dst []byte, v int64) []byte {
	return AppendUint64(dst, uint64(v))
}

func AppendFloat64(dst []byte, v float64) []byte {
	return AppendUint64(dst, math.Float64bits(v))
}

func AppendString(dst []byte, s string) []byte {
	dst = AppendUint16(dst, uint16(len(s)))
	return append(dst, s...)
}

// Scanner consumes a payload sequentially. The first short read latches
// the failure; callers check OK once after scanning.
type Scanner struct {
	src    []byte
	failed bool
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// OK reports whether every read so far succeeded.
func (s *Scanner) OK() bool {
	return !s.failed
}

// Done reports whether the payload was fully consumed without failure.
func (s *Scanner) Done() bool {
	return !s.failed && len(s.src) == 0
}

// remaining is the unconsumed byte count. Count prefixes are validated
// against it so a corrupt count cannot drive a huge allocation.
func (s *Scanner) remaining() int {
	return len(s.src)
}

func (s *Scanner) fail() {
	s.failed = true
}

func (s *Scanner) take(n int) []byte {
	if s.failed || len(s.src) < n {
		s.failed = true
		return nil
	}
	out := s.src[:n]
	s.src = s.src[n:]
	return out
}

func (s *Scanner) Uint16() uint16 {
	b := s.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (s *Scanner) Uint32() uint32 {
	b := s.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (s *Scanner) Uint64() uint64 {
	b := s.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (s *Scanner) Int64() int64 {
	return int64(s.Uint64())
}

func (s *Scanner) Float64() float64 {
	return math.Float64frombits(s.Uint64())
}

func (s *Scanner) String() string {
	n := int(s.Uint16())
	b := s.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}
