package recorder

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arsvincere/avin-sub002/internal/codec"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

var ErrWriterClosed = errors.New("bar log writer closed")

const writerBufferSize = 64 * 1024

// Writer appends base-resolution bars to a bar log file. Records are
// fixed size with a per-record checksum, so a truncated tail is
// detectable on read.
type Writer struct {
	file   *os.File
	buf    *bufio.Writer
	closed bool
}

// Create opens a new bar log at path, truncating any existing file.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	buf := bufio.NewWriterSize(file, writerBufferSize)
	if _, err := buf.Write(encodeFileHeader()); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	return &Writer{file: file, buf: buf}, nil
}

// Append writes one bar record.
func (w *Writer) Append(bar schema.Bar) error {
	if w.closed {
		return ErrWriterClosed
	}
	var record [recordSize]byte
	codec.EncodeBar(record[:codec.BarPayloadSize], bar)
	sum := checksum(record[:codec.BarPayloadSize])
	binary.LittleEndian.PutUint32(record[codec.BarPayloadSize:], sum)
	if _, err := w.buf.Write(record[:]); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	return nil
}

// Close flushes, syncs and closes the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	return nil
}
