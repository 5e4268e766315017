package main

import (
	"log"

	"github.com/scmlewis/eatwise-ai-sub000/config"
	"github.com/scmlewis/eatwise-ai-sub000/routes"
)

func main() {
	config.Load()
	r := routes.SetupRouter()
	if err := r.Run(config.ListenAddr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
