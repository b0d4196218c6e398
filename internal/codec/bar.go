package codec

import (
	"encoding/binary"
	"math"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

const BarPayloadSize = 48

// EncodeBar serializes a bar into a fixed-size payload.
func EncodeBar(dst []byte, bar schema.Bar) []byte {
	if cap(dst) < BarPayloadSize {
		dst = make([]byte, BarPayloadSize)
	} else {
		dst = dst[:BarPayloadSize]
	}

	binary.LittleEndian.PutUint64(dst[0:8], uint64(bar.Ts))
	binary.LittleEndian.PutUint64(dst[8:16], math.Float64bits(bar.Open))
	binary.LittleEndian.PutUint64(dst[16:24], math.Float64bits(bar.High))
	binary.LittleEndian.PutUint64(dst[24:32], math.Float64bits(bar.Low))
	binary.LittleEndian.PutUint64(dst[32:40], math.Float64bits(bar.Close))
	binary.LittleEndian.PutUint64(dst[40:48], uint64(bar.Volume))

	return dst
}

// DecodeBar parses a fixed-size bar payload.
func DecodeBar(src []byte) (schema.Bar, bool) {
	if len(src) < BarPayloadSize {
		return schema.Bar{}, false
	}
	return schema.Bar{
		Ts:     int64(binary.LittleEndian.Uint64(src[0:8])),
		Open:   math.Float64frombits(binary.LittleEndian.Uint64(src[8:16])),
		High:   math.Float64frombits(binary.LittleEndian.Uint64(src[16:24])),
		Low:    math.Float64frombits(binary.LittleEndian.Uint64(src[24:32])),
		Close:  math.Float64frombits(binary.LittleEndian.Uint64(src[32:40])),
		Volume: int64(binary.LittleEndian.Uint64(src[40:48])),
	}, true
}
