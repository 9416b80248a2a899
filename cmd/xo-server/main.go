package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jaminalder/xo-tic-tac-toe/internal/app"
	"github.com/jaminalder/xo-tic-tac-toe/internal/web"
)

func main() {
	addr := flag.String("addr", defaultAddr(), "Listen address, eg: :8080")
	think := flag.Duration("think", durationEnv("ENGINE_DELAY", 0), "Delay before each engine move")
	heartbeat := flag.Duration("heartbeat", durationEnv("SSE_HEARTBEAT", web.DefaultHeartbeat), "SSE keep-alive interval")
	flag.Parse()

	svc := app.NewServiceWithOptions(app.Options{ThinkDelay: *think})
	srv := &http.Server{
		Addr:              *addr,
		Handler:           web.NewServer(svc, *heartbeat),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("server listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// defaultAddr prefers PORT (set by most hosting platforms) over ADDR.
func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return getEnv("ADDR", ":8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationEnv accepts Go durations ("300ms") or whole seconds ("2").
func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := time.ParseDuration(v + "s"); err == nil {
		return secs
	}
	log.Printf("ignoring invalid %s=%q", key, v)
	return fallback
}
