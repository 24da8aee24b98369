package main

import (
	"flag"
	"fmt"
	"log"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/server"
	"storefront-gateway/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml config file (optional)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Print())
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
