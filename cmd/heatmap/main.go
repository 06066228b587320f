// Package main renders pointer recordings into heatmap images.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	heatmapcmd "github.com/louisbranch/dwelling.space/internal/cmd/heatmap"
)

func main() {
	cfg, err := heatmapcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[HEATMAP] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := heatmapcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("render heatmap: %v", err)
	}
}
