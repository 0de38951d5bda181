package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/apexcarclub/clubsite/internal/config"
	"github.com/apexcarclub/clubsite/internal/web"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router, err := web.NewRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	handler := web.LoggingMiddleware(router)

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
