package main

import (
	"log"
	"net/http"

	"blockpuzzle/config"
	"blockpuzzle/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	srv, err := server.New(cfg, catalog)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	log.Printf("✅ Server started on: http://localhost:%s (%dx%d grid, %d pieces)", cfg.Port, cfg.Rows, cfg.Cols, catalog.Len())
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, srv.Handler()))
}
