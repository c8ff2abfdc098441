// Seeds the default room catalog through the booking backend.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"roombook/internal/config"
	"roombook/internal/gateway"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	backend := gateway.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rooms, err := backend.SeedRooms(ctx)
	if err != nil {
		log.Fatalf("seed rooms: %v", err)
	}

	for _, r := range rooms {
		log.Printf("seeded room %s %q rate=%.0f capacity=%d", r.ID, r.Name, r.BaseHourlyRate, r.Capacity)
	}
}
