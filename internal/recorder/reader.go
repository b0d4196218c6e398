package recorder

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/arsvincere/avin-sub002/internal/codec"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Reader decodes bar log records sequentially from a stream.
type Reader struct {
	r      *bufio.Reader
	record [recordSize]byte
	ready  bool
}

// NewReader wraps an io.Reader with bar log decoding. The file header is
// validated on the first call to Next.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next bar. io.EOF signals a clean end of the log.
func (r *Reader) Next() (schema.Bar, error) {
	if !r.ready {
		var header [fileHeaderSize]byte
		if _, err := io.ReadFull(r.r, header[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return schema.Bar{}, ErrTruncated
			}
			return schema.Bar{}, err
		}
		if err := decodeFileHeader(header[:]); err != nil {
			return schema.Bar{}, err
		}
		r.ready = true
	}

	n, err := io.ReadFull(r.r, r.record[:])
	if err != nil {
		if err == io.EOF && n == 0 {
			return schema.Bar{}, io.EOF
		}
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return schema.Bar{}, ErrTruncated
		}
		return schema.Bar{}, err
	}

	payload := r.record[:codec.BarPayloadSize]
	expected := binary.LittleEndian.Uint32(r.record[codec.BarPayloadSize:])
	if checksum(payload) != expected {
		return schema.Bar{}, ErrChecksumMismatch
	}

	bar, ok := codec.DecodeBar(payload)
	if !ok {
		return schema.Bar{}, ErrTruncated
	}
	return bar, nil
}
