package recorder

import (
	"fmt"
	"io"
	"os"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Playback streams a bar log file as a bar source for simulated runs.
type Playback struct {
	file *os.File
	r    *Reader
	done bool
}

// Open opens a bar log for playback.
func Open(path string) (*Playback, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", schema.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", schema.ErrIO, err)
	}
	return &Playback{file: file, r: NewReader(file)}, nil
}

// Next returns the next bar; false once the log is exhausted.
func (p *Playback) Next() (schema.Bar, bool, error) {
	if p.done {
		return schema.Bar{}, false, nil
	}
	bar, err := p.r.Next()
	if err == io.EOF {
		p.done = true
		return schema.Bar{}, false, nil
	}
	if err != nil {
		return schema.Bar{}, false, err
	}
	return bar, true, nil
}

// Close releases the underlying file.
func (p *Playback) Close() error {
	return p.file.Close()
}
