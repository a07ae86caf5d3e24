package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/klabast/wb-services/sprint-kalender/internal/app"
	"github.com/klabast/wb-services/sprint-kalender/internal/commands"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed static/index.html
var indexHTML []byte

func main() {
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		commands.HashPassword(os.Args[2:])
		return
	}

	// Parse flags
	port := flag.Int("port", 0, "Port to listen on (overrides config file)")
	configPath := flag.String("config", "", "Path to TOML config file")
	protected := flag.Bool("protected", false, "Require Basic Auth for all routes")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *protected {
		cfg.Protected = true
	}

	// Make configuration and embedded files available to app package
	app.Cfg = cfg
	app.Protected = cfg.Protected
	app.IndexHTML = indexHTML

	// Load and validate auth credentials (if protected mode)
	if app.Protected {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	guard := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if app.Protected {
		guard = app.RequireAuth
	}

	// Setup routes
	http.HandleFunc("/", guard(app.ServeIndex))
	http.HandleFunc("/api/config", guard(app.GetConfig))
	http.HandleFunc("/api/parse", guard(app.HandleParse))
	http.HandleFunc("/api/render", guard(app.HandleRender))
	http.HandleFunc("/api/download", guard(app.HandleDownload))

	// Serve static files behind the same guard as the rest
	http.HandleFunc("/static/", guard(http.FileServer(http.FS(staticFiles)).ServeHTTP))

	log.Printf("Starting Sprintkalender on http://localhost:%d", cfg.Port)
	if cfg.HolidayRegion != "" {
		log.Printf("Holiday region: %s", cfg.HolidayRegion)
	}
	if cfg.Protected {
		log.Printf("Protected mode enabled")
	}
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), nil); err != nil {
		log.Fatal(err)
	}
}
