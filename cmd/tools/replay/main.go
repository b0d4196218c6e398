package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/arsvincere/avin-sub002/internal/recorder"
)

func main() {
	path := flag.String("path", "", "Bar log path")
	limit := flag.Int("limit", 0, "Max bars to print (0=all)")
	flag.Parse()

	if *path == "" {
		log.Fatalf("path is required")
	}
	playback, err := recorder.Open(*path)
	if err != nil {
		log.Fatalf("bar log open failed: %v", err)
	}
	defer playback.Close()

	var index int
	for {
		bar, ok, err := playback.Next()
		if err != nil {
			log.Fatalf("read failed: %v", err)
		}
		if !ok {
			break
		}
		index++
		ts := time.Unix(0, bar.Ts).UTC().Format(time.RFC3339)
		fmt.Printf("%06d %s o=%.2f h=%.2f l=%.2f c=%.2f v=%d\n",
			index, ts, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
		if *limit > 0 && index >= *limit {
			break
		}
	}
	fmt.Printf("total=%d\n", index)
}
