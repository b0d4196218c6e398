package schema

import (
	"fmt"
	"strings"
)

// Iid identifies a tradable instrument.
type Iid struct {
	Exchange string
	Ticker   string
}

// ParseIid parses an instrument spec of the form "EXCHANGE;TICKER".
func ParseIid(s string) (Iid, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		return Iid{}, fmt.Errorf("%w: instrument spec %q", ErrInvalidValue, s)
	}
	exchange := strings.ToUpper(strings.TrimSpace(parts[0]))
	ticker := strings.ToUpper(strings.TrimSpace(parts[1]))
	if exchange == "" || ticker == "" {
		return Iid{}, fmt.Errorf("%w: instrument spec %q", ErrInvalidValue, s)
	}
	return Iid{Exchange: exchange, Ticker: ticker}, nil
}

func (i Iid) String() string {
	return i.Exchange + ";" + i.Ticker
}

// IsZero reports whether the id is empty.
func (i Iid) IsZero() bool {
	return i.Exchange == "" && i.Ticker == ""
}
