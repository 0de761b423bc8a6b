package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/booking"
	"github.com/cineseat/booking-gateway/internal/config"
	"github.com/cineseat/booking-gateway/internal/handler"
	"github.com/cineseat/booking-gateway/internal/queue"
	"github.com/cineseat/booking-gateway/internal/remote"
	"github.com/cineseat/booking-gateway/internal/router"
)

func main() {
	cfg := config.Load()

	api := remote.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	store := booking.NewStore(api)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; caching and rate limiting disabled")
	}

	// Background workers: idle-coordinator eviction and the purchase
	// event consumer.
	go store.RunEviction(context.Background(), time.Minute, 30*time.Minute)
	go func() {
		if err := queue.StartPurchaseConsumer(); err != nil {
			log.Printf("purchase consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, router.Handlers{
		Catalog: handler.NewCatalogHandler(api),
		Auth:    handler.NewAuthHandler(api),
		Booking: handler.NewBookingHandler(store, api),
		Admin:   handler.NewAdminHandler(api),
	}, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, upstream=%s)", addr, cfg.Env, cfg.APIBaseURL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
