package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %+v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"root": "/var/avin",
		"barLog": "/var/avin/bars.log",
		"resultsDb": "/var/avin/results.db",
		"strategy": "everybar",
		"instrument": "moex;sber",
		"deposit": 100000,
		"commission": 0.0005,
		"begin": "2025-01-01T00:00:00Z",
		"end": "2025-02-01T00:00:00Z",
		"risk": {"maxOrderLots": 100}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %+v", err)
	}
	if cfg.Iid.Exchange != "MOEX" || cfg.Iid.Ticker != "SBER" {
		t.Fatalf("iid mismatch: %+v", cfg.Iid)
	}
	begin, _ := time.Parse(time.RFC3339, "2025-01-01T00:00:00Z")
	if cfg.BeginTs != begin.UnixNano() {
		t.Fatalf("begin mismatch: %d", cfg.BeginTs)
	}
	if cfg.EndTs <= cfg.BeginTs {
		t.Fatalf("end mismatch: %d", cfg.EndTs)
	}
	if cfg.Commission != 0.0005 || cfg.Deposit != 100000 {
		t.Fatalf("numbers mismatch: %+v", cfg)
	}
	if cfg.Risk.MaxOrderLots != 100 {
		t.Fatalf("risk mismatch: %+v", cfg.Risk)
	}
}

func TestLoadUnboundedEnd(t *testing.T) {
	path := writeConfig(t, `{
		"root": "/var/avin",
		"barLog": "/var/avin/bars.log",
		"strategy": "everybar",
		"instrument": "MOEX;SBER"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %+v", err)
	}
	if cfg.BeginTs != 0 || cfg.EndTs != 0 {
		t.Fatalf("range mismatch: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"missing root":       `{"barLog": "x", "strategy": "s", "instrument": "A;B"}`,
		"missing bar log":    `{"root": "x", "strategy": "s", "instrument": "A;B"}`,
		"missing strategy":   `{"root": "x", "barLog": "y", "instrument": "A;B"}`,
		"bad instrument":     `{"root": "x", "barLog": "y", "strategy": "s", "instrument": "AB"}`,
		"bad begin":          `{"root": "x", "barLog": "y", "strategy": "s", "instrument": "A;B", "begin": "yesterday"}`,
		"end before begin":   `{"root": "x", "barLog": "y", "strategy": "s", "instrument": "A;B", "begin": "2025-02-01T00:00:00Z", "end": "2025-01-01T00:00:00Z"}`,
		"negative deposit":   `{"root": "x", "barLog": "y", "strategy": "s", "instrument": "A;B", "deposit": -1}`,
		"negative risk lots": `{"root": "x", "barLog": "y", "strategy": "s", "instrument": "A;B", "risk": {"maxOrderLots": -1}}`,
		"not json":           `nope`,
	} {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
