package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"postal-distance-service/internal/adapters/distance"
	"postal-distance-service/internal/api"
	"postal-distance-service/internal/config"
)

// main is the application composition root.
// It wires the concrete matrix adapter behind the querier port and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	querier, err := distance.NewMatrixQuerier(cfg.MatrixBaseURL, cfg.ClientTimeout)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(querier, cfg.SessionSecret, cfg.TemplatesGlob)

	// The write timeout covers up to four sequential upstream round-trips
	// per submission.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
