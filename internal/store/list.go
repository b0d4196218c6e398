package store

import (
	"github.com/arsvincere/avin-sub002/internal/codec"
	"github.com/arsvincere/avin-sub002/internal/trade"
)

var listMagic = [4]byte{'A', 'V', 'T', 'L'}

// SaveList persists a trade list as one binary blob.
func SaveList(path string, l *trade.List) error {
	return writeBlob(path, listMagic, codec.EncodeList(nil, l))
}

// LoadList restores a trade list. Save then Load yields an equal value.
func LoadList(path string) (*trade.List, error) {
	payload, err := readBlob(path, listMagic)
	if err != nil {
		return nil, err
	}
	return codec.DecodeList(payload)
}
