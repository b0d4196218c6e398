package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arsvincere/avin-sub002/pkg/conn"
)

func TestResultStore(t *testing.T) {
	client, err := conn.New(conn.Option{Path: filepath.Join(t.TempDir(), "results.db")})
	require.NoError(t, err)
	defer client.Close()

	results, err := NewResultStore(client.DB())
	require.NoError(t, err)

	require.NoError(t, results.SaveRun(&RunRecord{
		Strategy:    "everybar",
		Exchange:    "MOEX",
		Ticker:      "SBER",
		TotalTrades: 10,
		NetProfit:   42.5,
	}))
	require.NoError(t, results.SaveRun(&RunRecord{
		Strategy:    "everybar",
		Exchange:    "MOEX",
		Ticker:      "GAZP",
		TotalTrades: 3,
		NetProfit:   -7.0,
	}))
	require.NoError(t, results.SaveRun(&RunRecord{
		Strategy: "other",
		Ticker:   "SBER",
	}))

	runs, err := results.RunsByStrategy("everybar")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		require.Equal(t, "everybar", run.Strategy)
	}

	empty, err := results.RunsByStrategy("missing")
	require.NoError(t, err)
	require.Empty(t, empty)
}
