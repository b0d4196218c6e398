package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/arsvincere/avin-sub002/internal/risk"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Root       string      `json:"root"`
	BarLog     string      `json:"barLog"`
	ResultsDB  string      `json:"resultsDb"`
	Strategy   string      `json:"strategy"`
	Instrument string      `json:"instrument"`
	Deposit    float64     `json:"deposit"`
	Commission float64     `json:"commission"`
	Begin      string      `json:"begin"`
	End        string      `json:"end"`
	Risk       risk.Config `json:"risk"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Root       string
	BarLog     string
	ResultsDB  string
	Strategy   string
	Iid        schema.Iid
	Deposit    float64
	Commission float64
	BeginTs    int64
	EndTs      int64
	Risk       risk.Config
}

// Load reads a JSON config file and resolves it. Begin and End are
// RFC3339 timestamps; an empty End leaves the run unbounded.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if cfg.Root == "" {
		return Loaded{}, fmt.Errorf("root is empty")
	}
	if cfg.BarLog == "" {
		return Loaded{}, fmt.Errorf("barLog is empty")
	}
	if cfg.Strategy == "" {
		return Loaded{}, fmt.Errorf("strategy is empty")
	}
	iid, err := schema.ParseIid(cfg.Instrument)
	if err != nil {
		return Loaded{}, fmt.Errorf("invalid instrument: %w", err)
	}
	if cfg.Deposit < 0 {
		return Loaded{}, fmt.Errorf("deposit must be >= 0")
	}
	if cfg.Commission < 0 {
		return Loaded{}, fmt.Errorf("commission must be >= 0")
	}

	loaded := Loaded{
		Root:       cfg.Root,
		BarLog:     cfg.BarLog,
		ResultsDB:  cfg.ResultsDB,
		Strategy:   cfg.Strategy,
		Iid:        iid,
		Deposit:    cfg.Deposit,
		Commission: cfg.Commission,
		Risk:       cfg.Risk,
	}
	if cfg.Risk.MaxOrderLots < 0 || cfg.Risk.MaxOrderValue < 0 || cfg.Risk.MaxPosition < 0 {
		return Loaded{}, fmt.Errorf("risk limits must be >= 0")
	}
	if cfg.Begin != "" {
		begin, err := time.Parse(time.RFC3339, cfg.Begin)
		if err != nil {
			return Loaded{}, fmt.Errorf("invalid begin: %w", err)
		}
		loaded.BeginTs = begin.UnixNano()
	}
	if cfg.End != "" {
		end, err := time.Parse(time.RFC3339, cfg.End)
		if err != nil {
			return Loaded{}, fmt.Errorf("invalid end: %w", err)
		}
		loaded.EndTs = end.UnixNano()
	}
	if loaded.EndTs != 0 && loaded.EndTs <= loaded.BeginTs {
		return Loaded{}, fmt.Errorf("end must be after begin")
	}
	return loaded, nil
}
