package main

import (
	"flag"
	"fmt"
	"log"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/pkg/sys"

	"github.com/arsvincere/avin-sub002/internal/ops"
	"github.com/arsvincere/avin-sub002/internal/recorder"
	"github.com/arsvincere/avin-sub002/internal/risk"
	"github.com/arsvincere/avin-sub002/internal/store"
	"github.com/arsvincere/avin-sub002/internal/strategy"
	"github.com/arsvincere/avin-sub002/internal/tester"
	"github.com/arsvincere/avin-sub002/internal/trade"
	"github.com/arsvincere/avin-sub002/pkg/conn"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	lots := flag.Int64("lots", 1, "Lots per position for the built-in strategy")
	holdBars := flag.Int("hold-bars", 1, "Bars to hold a position for the built-in strategy")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disable)")
	flag.Parse()

	if *configPath == "" {
		log.Fatalf("config path is required")
	}
	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "avin/tester",
			ServerAddress:   *pyroscopeAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	s, err := buildStrategy(cfg.Strategy, *lots, *holdBars)
	if err != nil {
		log.Fatalf("strategy init failed: %v", err)
	}

	playback, err := recorder.Open(cfg.BarLog)
	if err != nil {
		log.Fatalf("bar log open failed: %v", err)
	}
	defer playback.Close()

	test := tester.New(cfg.Strategy, cfg.Iid)
	test.Deposit = cfg.Deposit
	test.Commission = cfg.Commission
	test.BeginTs = cfg.BeginTs
	test.EndTs = cfg.EndTs

	t := tester.NewTester(cfg.Root)
	if cfg.Risk != (risk.Config{}) {
		t.WithRisk(risk.NewEngine(cfg.Risk))
	}
	done := make(chan error, 1)
	go func() {
		done <- t.Run(test, s, playback)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("run failed: %v", err)
		}
	case <-sys.Shutdown():
		log.Fatalf("interrupted")
	}

	summary := trade.NewSummary(test.TradeList)
	printSummary(summary)

	if cfg.ResultsDB != "" {
		if err := persistRun(cfg, summary); err != nil {
			log.Fatalf("persist run failed: %v", err)
		}
	}
}

func buildStrategy(name string, lots int64, holdBars int) (strategy.Strategy, error) {
	switch name {
	case "everybar":
		return strategy.NewEveryBar(lots, holdBars), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
}

func printSummary(s trade.Summary) {
	fmt.Printf("trades=%d win=%d loss=%d\n", s.TotalTrades, s.WinTrades, s.LossTrades)
	fmt.Printf("gross_profit=%.2f gross_loss=%.2f net_profit=%.2f\n", s.GrossProfit, s.GrossLoss, s.NetProfit)
	fmt.Printf("profit_ratio=%.2f percent_profitable=%.2f\n", s.ProfitRatio, s.PercentProfitable)
	fmt.Printf("avg_trade=%.2f avg_win=%.2f avg_loss=%.2f\n", s.AverageTrade, s.AverageWin, s.AverageLoss)
	fmt.Printf("largest_win=%.2f largest_loss=%.2f win_streak=%d loss_streak=%d\n", s.LargestWin, s.LargestLoss, s.WinStreak, s.LossStreak)
}

func persistRun(cfg ops.Loaded, s trade.Summary) error {
	client, err := conn.New(conn.Option{Path: cfg.ResultsDB})
	if err != nil {
		return err
	}
	defer client.Close()

	results, err := store.NewResultStore(client.DB())
	if err != nil {
		return err
	}
	return results.SaveRun(&store.RunRecord{
		Strategy:          cfg.Strategy,
		Exchange:          cfg.Iid.Exchange,
		Ticker:            cfg.Iid.Ticker,
		BeginTs:           cfg.BeginTs,
		EndTs:             cfg.EndTs,
		Deposit:           cfg.Deposit,
		Commission:        cfg.Commission,
		TotalTrades:       s.TotalTrades,
		WinTrades:         s.WinTrades,
		LossTrades:        s.LossTrades,
		GrossProfit:       s.GrossProfit,
		GrossLoss:         s.GrossLoss,
		NetProfit:         s.NetProfit,
		ProfitRatio:       s.ProfitRatio,
		PercentProfitable: s.PercentProfitable,
	})
}
