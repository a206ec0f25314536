package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"docspot-booking-api/internal/booking"
	"docspot-booking-api/internal/config"
	"docspot-booking-api/internal/handler"
	"docspot-booking-api/internal/middleware"
	"docspot-booking-api/internal/payment"
	"docspot-booking-api/internal/store"
	"docspot-booking-api/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	// store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Error("redis ping failed", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	log.Info("connected to redis", "addr", cfg.RedisAddr)

	st := store.New(rdb)

	// first-run bootstrap
	if cfg.SeedOnStart {
		if err := st.Seed(context.Background(), time.Now()); err != nil {
			log.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	svc := booking.New(st, payment.NewProcessor(cfg.PaymentDelay), log)
	h := handler.New(svc, log)
	rl := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes(st, rl),
	}
	go func() {
		log.Info("http server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server", "error", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
