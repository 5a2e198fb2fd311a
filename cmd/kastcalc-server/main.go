// kastcalc-server serves the KastCalc calculation pipeline over HTTP.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/piwi3910/KastCalc/internal/project"
	"github.com/piwi3910/KastCalc/internal/server"
)

func main() {
	var (
		addr        = flag.String("addr", envOr("KASTCALC_ADDR", ":8080"), "Listen address")
		configFile  = flag.String("config", project.DefaultConfigPath(), "Path to the app config")
		paramsFile  = flag.String("params", "", "Production parameters (.json, .yaml or .yml)")
		pricesFile  = flag.String("prices", "", "Price list (.json, .yaml or .yml)")
		catalogFile = flag.String("catalog", "", "Material catalog (.json)")
	)
	flag.Parse()

	cfg, err := project.LoadAppConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *paramsFile == "" {
		*paramsFile = cfg.ParamsFile
	}
	if *catalogFile == "" {
		*catalogFile = cfg.CatalogFile
	}
	if *pricesFile == "" {
		*pricesFile = cfg.PricesFile
	}

	catalog, err := project.LoadCatalog(*catalogFile)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	params, err := project.LoadParams(*paramsFile)
	if err != nil {
		log.Fatalf("failed to load production parameters: %v", err)
	}
	prices, err := project.LoadPriceList(*pricesFile)
	if err != nil {
		log.Fatalf("failed to load price list: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(catalog, params, prices, cfg).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
