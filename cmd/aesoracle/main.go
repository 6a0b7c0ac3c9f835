package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/sulami/cryptopals/internal/config"
	"github.com/sulami/cryptopals/internal/cpuinfo"
	mhttp "github.com/sulami/cryptopals/internal/http"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Main: unable to load config: %v\n", err)
	}

	key, err := cfg.Key()
	if errors.Is(err, config.ErrNoKey) {
		log.Printf("Main: no default key configured, requests must carry one")
	} else if err != nil {
		log.Fatalf("Main: unable to resolve key: %v\n", err)
	}

	log.Printf("Main: %s", cpuinfo.Describe())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mhttp.NewRouter(key, cfg.Workers),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("Main: listening on %s", cfg.Addr)
	log.Fatal(srv.ListenAndServe())
}
