package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"keywire/internal/registry"
	"keywire/internal/relay"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	ttl := flag.Duration("ttl", 10*time.Minute, "session TTL; renewed on activity")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := registry.New(registry.Config{})
	srv := &http.Server{
		Addr:    *addr,
		Handler: relay.NewServer(reg, *ttl).Handler(),
	}

	go func() {
		log.Printf("keywired listening on %s (session ttl %s)", *addr, *ttl)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	// Stop the HTTP surface first, then the registry, so no handler can race
	// a torn-down table.
	reg.Close()
}
