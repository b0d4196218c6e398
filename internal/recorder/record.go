package recorder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/arsvincere/avin-sub002/internal/codec"
)

const (
	fileVersion    uint16 = 1
	fileHeaderSize        = 8
	recordSize            = codec.BarPayloadSize + recordChecksumSize

	recordChecksumSize = 4
)

var (
	fileMagic = [4]byte{'A', 'V', 'B', 'R'}
	crcTable  = crc32.MakeTable(crc32.Castagnoli)
)

var (
	ErrInvalidMagic       = errors.New("bar log invalid magic")
	ErrUnsupportedVersion = errors.New("bar log unsupported version")
	ErrChecksumMismatch   = errors.New("bar log checksum mismatch")
	ErrTruncated          = errors.New("bar log truncated")
)

func encodeFileHeader() []byte {
	header := make([]byte, fileHeaderSize)
	copy(header[0:4], fileMagic[:])
	binary.LittleEndian.PutUint16(header[4:6], fileVersion)
	return header
}

func decodeFileHeader(src []byte) error {
	if len(src) < fileHeaderSize {
		return ErrTruncated
	}
	if !bytes.Equal(src[0:4], fileMagic[:]) {
		return ErrInvalidMagic
	}
	if ver := binary.LittleEndian.Uint16(src[4:6]); ver != fileVersion {
		return ErrUnsupportedVersion
	}
	return nil
}

func checksum(payload []byte) uint32 {
	return crc32.Update(0, crcTable, payload)
}
