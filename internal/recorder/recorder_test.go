package recorder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arsvincere/avin-sub002/internal/schema"
)

func sampleBars(n int) []schema.Bar {
	bars := make([]schema.Bar, 0, n)
	for i := 0; i < n; i++ {
		bars = append(bars, schema.Bar{
			Ts:     int64(i) * 60_000_000_000,
			Open:   100 + float64(i),
			High:   101 + float64(i),
			Low:    99 + float64(i),
			Close:  100.5 + float64(i),
			Volume: int64(10 + i),
		})
	}
	return bars
}

func writeLog(t *testing.T, path string, bars []schema.Bar) {
	t.Helper()
	w, err := Create(path)
	if err != nil {
		t.Fatalf("create failed: %+v", err)
	}
	for _, bar := range bars {
		if err := w.Append(bar); err != nil {
			t.Fatalf("append failed: %+v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %+v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bars.log")
	bars := sampleBars(5)
	writeLog(t, path, bars)

	pb, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	defer pb.Close()

	for i, want := range bars {
		bar, ok, err := pb.Next()
		if err != nil {
			t.Fatalf("next %d failed: %+v", i, err)
		}
		if !ok {
			t.Fatalf("stream ended at %d", i)
		}
		if bar != want {
			t.Fatalf("bar %d mismatch: %+v != %+v", i, bar, want)
		}
	}

	if _, ok, err := pb.Next(); err != nil || ok {
		t.Fatalf("expected clean end, got ok=%v err=%+v", ok, err)
	}
	// Exhausted playback stays exhausted.
	if _, ok, _ := pb.Next(); ok {
		t.Fatalf("playback restarted after end")
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.log"))
	if !errors.Is(err, schema.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %+v", err)
	}
}

func TestCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.log")
	writeLog(t, path, sampleBars(2))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	// Flip a byte inside the second record's payload.
	data[fileHeaderSize+recordSize+4] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %+v", err)
	}

	pb, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	defer pb.Close()

	if _, ok, err := pb.Next(); err != nil || !ok {
		t.Fatalf("first record should survive: ok=%v err=%+v", ok, err)
	}
	if _, _, err := pb.Next(); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %+v", err)
	}
}

func TestTruncatedTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.log")
	writeLog(t, path, sampleBars(2))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %+v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-5], 0o644); err != nil {
		t.Fatalf("write failed: %+v", err)
	}

	pb, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	defer pb.Close()

	if _, ok, err := pb.Next(); err != nil || !ok {
		t.Fatalf("first record should survive: ok=%v err=%+v", ok, err)
	}
	if _, _, err := pb.Next(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %+v", err)
	}
}

func TestWrongMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.log")
	if err := os.WriteFile(path, []byte("NOTABARLOG"), 0o644); err != nil {
		t.Fatalf("write failed: %+v", err)
	}

	pb, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %+v", err)
	}
	defer pb.Close()

	if _, _, err := pb.Next(); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %+v", err)
	}
}
