package main

import (
	"log"

	"github.com/visyura/notna-archives.art/internal/config"
	"github.com/visyura/notna-archives.art/internal/relay"
	"github.com/visyura/notna-archives.art/internal/router"
)

func main() {
	cfg := config.Load()

	hub := relay.NewHub()
	go hub.Run()

	r := router.Setup(cfg, hub)
	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
