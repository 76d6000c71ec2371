package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/maseology/mmio"

	awp "github.com/andy-lcw/awp-odc-os"
	"github.com/andy-lcw/awp-odc-os/model"
)

func main() {

	cfp := flag.String("c", "awp.yaml", "run configuration (yaml)")
	rank := flag.Int("rank", -1, "run a single partition; -1 runs every rank in-process")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete.")

	cfg, err := awp.LoadConfig(*cfp)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}

	if *rank >= 0 {
		dom, err := model.NewDomain(cfg, *rank, nil)
		if err != nil {
			log.Fatalf("Fatal error: %v", err)
		}
		tt.Print("domain load complete")
		if err := dom.Run(nil); err != nil {
			log.Fatalf("Fatal error: %v", err)
		}
		return
	}

	doms, err := model.NewDomains(cfg, nil)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
	tt.Print("domain load complete")
	for _, dom := range doms {
		if err := dom.Run(nil); err != nil {
			log.Fatalf("Fatal error: rank %d: %v", dom.Rank, err)
		}
	}
}
