package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/arsvincere/avin-sub002/internal/mdg"
	"github.com/arsvincere/avin-sub002/internal/recorder"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

func main() {
	path := flag.String("path", "testdata/bars.log", "Bar log output path")
	bars := flag.Int("bars", 1000, "Number of bars to generate")
	seed := flag.Int64("seed", 1, "Random walk seed")
	start := flag.String("start", "2025-01-01T00:00:00Z", "Series start (RFC3339)")
	price := flag.Float64("price", 100, "Start price")
	volatility := flag.Float64("volatility", 0.01, "Per-bar volatility")
	volume := flag.Int64("volume", 100, "Base volume")
	flag.Parse()

	if *bars <= 0 {
		log.Fatalf("bars must be > 0")
	}
	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		log.Fatalf("invalid start: %v", err)
	}

	generator, err := mdg.NewGenerator(mdg.Config{
		Seed:       *seed,
		Timeframe:  schema.Timeframe1M,
		StartTs:    startTime.UnixNano(),
		StartPrice: *price,
		Volatility: *volatility,
		BaseVolume: *volume,
	})
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	writer, err := recorder.Create(*path)
	if err != nil {
		log.Fatalf("bar log create failed: %v", err)
	}
	for i := 0; i < *bars; i++ {
		if err := writer.Append(generator.Next()); err != nil {
			_ = writer.Close()
			log.Fatalf("append failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		log.Fatalf("close failed: %v", err)
	}
	fmt.Printf("wrote %d bars to %s\n", *bars, *path)
}
