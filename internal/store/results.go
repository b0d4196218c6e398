package store

import (
	"time"

	"gorm.io/gorm"
)

// RunRecord is one completed backtest run persisted for later
// comparison across strategies and parameter sets.
type RunRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Strategy   string `gorm:"index"`
	Exchange   string
	Ticker     string `gorm:"index"`
	BeginTs    int64
	EndTs      int64
	Deposit    float64
	Commission float64

	TotalTrades       int
	WinTrades         int
	LossTrades        int
	GrossProfit       float64
	GrossLoss         float64
	NetProfit         float64
	ProfitRatio       float64
	PercentProfitable float64
}

// ResultStore keeps run records in a relational database.
type ResultStore struct {
	db *gorm.DB
}

// NewResultStore migrates the schema and returns the store.
func NewResultStore(db *gorm.DB) (*ResultStore, error) {
	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, err
	}
	return &ResultStore{db: db}, nil
}

// SaveRun inserts one run record.
func (s *ResultStore) SaveRun(record *RunRecord) error {
	return s.db.Create(record).Error
}

// RunsByStrategy returns all runs of a strategy, newest first.
func (s *ResultStore) RunsByStrategy(strategy string) ([]RunRecord, error) {
	var records []RunRecord
	err := s.db.
		Where("strategy = ?", strategy).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
