package main

import (
	"log"

	"gameroom/internal/cli"
	"gameroom/internal/config"
	"gameroom/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	registry := game.NewRegistry()
	if err := cli.NewRootCmd(registry, cfg).Execute(); err != nil {
		log.Fatalf("gameroom: %v", err)
	}
}
