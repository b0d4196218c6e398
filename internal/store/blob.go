package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

const (
	blobVersion    uint16 = 1
	blobHeaderSize        = 14
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

var (
	ErrInvalidMagic       = errors.New("blob invalid magic")
	ErrUnsupportedVersion = errors.New("blob unsupported version")
	ErrChecksumMismatch   = errors.New("blob checksum mismatch")
	ErrTruncated          = errors.New("blob truncated")
)

// writeBlob persists a payload under a 4-byte magic with version, length
// and CRC32-Castagnoli checksum. The write goes through a temp file and
// rename so existing files survive a failed run.
func writeBlob(path string, magic [4]byte, payload []byte) error {
	header := make([]byte, blobHeaderSize)
	copy(header[0:4], magic[:])
	binary.LittleEndian.PutUint16(header[4:6], blobVersion)
	binary.LittleEndian.PutUint32(header[6:10], uint32(len(payload)))
	sum := crc32.Update(0, crcTable, header[:10])
	sum = crc32.Update(sum, crcTable, payload)
	binary.LittleEndian.PutUint32(header[10:14], sum)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if _, err := file.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if _, err := file.Write(payload); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	return nil
}

// SaveBlob writes a checksummed payload for callers owning their own
// magic and payload encoding.
func SaveBlob(path string, magic [4]byte, payload []byte) error {
	return writeBlob(path, magic, payload)
}

// LoadBlob reads back a payload written by SaveBlob.
func LoadBlob(path string, magic [4]byte) ([]byte, error) {
	return readBlob(path, magic)
}

// readBlob loads and verifies a payload written by writeBlob.
func readBlob(path string, magic [4]byte) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", schema.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	if len(data) < blobHeaderSize {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, ErrInvalidMagic
	}
	if ver := binary.LittleEndian.Uint16(data[4:6]); ver != blobVersion {
		return nil, ErrUnsupportedVersion
	}
	payloadLen := binary.LittleEndian.Uint32(data[6:10])
	expected := binary.LittleEndian.Uint32(data[10:14])
	payload := data[blobHeaderSize:]
	if uint32(len(payload)) != payloadLen {
		return nil, ErrTruncated
	}
	sum := crc32.Update(0, crcTable, data[0:10])
	sum = crc32.Update(sum, crcTable, payload)
	if sum != expected {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
