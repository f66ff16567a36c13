package main

import (
	"flag"
	"log"
	"os"

	"github.com/zm-bm/latrunculi/internal/config"
	"github.com/zm-bm/latrunculi/internal/uci"
)

var configPath = flag.String("config", "latrunculi.toml", "path to a TOML config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("warning: %v (using defaults)", err)
	}

	handler := uci.New(os.Stdout, cfg)
	handler.Run(os.Stdin)
}
